package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"service_engine_x/internal/adapter/http/handlers/mocks"
	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("missing user rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))

		r := orgScoped("org-1")
		r.POST("/api/invoices", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices",
			bytes.NewBufferString(`{"items":[{"name":"Design","amount":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/invoices", h.Create)

		uc.EXPECT().Create(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, input usecase.CreateInvoiceInput) (entities.Invoice, error) {
				if input.UserID != "client-1" || len(input.Items) != 1 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Invoice{ID: "inv-1", OrgID: "org-1", UserID: "client-1", Total: 100}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices",
			bytes.NewBufferString(`{"user_id":"client-1","items":[{"name":"Design","amount":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	t.Run("illegal transition maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := orgScoped("org-1")
		r.PATCH("/api/invoices/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "org-1", "inv-1", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrInvoiceStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/api/invoices/inv-1",
			bytes.NewBufferString(`{"status":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cross org invoice reads as 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := orgScoped("org-1")
		r.PATCH("/api/invoices/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "org-1", "inv-other", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/invoices/inv-other",
			bytes.NewBufferString(`{"note":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_MarkPaid(t *testing.T) {
	t.Run("refunded invoice rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/invoices/:id/mark-paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "org-1", "inv-1").
			Return(entities.Invoice{}, usecase.ErrInvoiceStatusTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/invoices/:id/mark-paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), "org-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/mark-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != float64(entities.InvoiceStatusPaid) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
