package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"service_engine_x/internal/adapter/http/handlers/mocks"
	"service_engine_x/internal/adapter/http/middleware"
	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// orgScoped builds a router that injects an authenticated org, the way the
// auth middleware does after verifying a bearer token.
func orgScoped(orgID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextOrgID, orgID)
	})
	return r
}

func TestProposalHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl))

		r := orgScoped("org-1")
		r.POST("/api/proposals", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email gets validation envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl))

		r := orgScoped("org-1")
		r.POST("/api/proposals", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals",
			bytes.NewBufferString(`{"contact_name_f":"Jane","items":[{"name":"Design","price":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body ValidationErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Message != "The given data was invalid." || len(body.Errors["ContactEmail"]) == 0 {
			t.Fatalf("unexpected envelope: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/proposals", h.Create)

		uc.EXPECT().Create(gomock.Any(), "org-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, input usecase.CreateProposalInput) (entities.Proposal, error) {
				if input.ContactEmail != "jane@acme.test" || len(input.Items) != 1 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Proposal{ID: "prop-1", OrgID: "org-1", ContactEmail: input.ContactEmail, Status: entities.ProposalStatusDraft}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals",
			bytes.NewBufferString(`{"contact_email":"jane@acme.test","contact_name_f":"Jane","items":[{"name":"Design","price":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Send(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/proposals/:id/send", h.Send)

		uc.EXPECT().Send(gomock.Any(), "org-1", "prop-9").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals/prop-9/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("status conflict maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/proposals/:id/send", h.Send)

		uc.EXPECT().Send(gomock.Any(), "org-1", "prop-1").
			Return(entities.Proposal{}, usecase.ErrProposalStatusConflict)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals/prop-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProposalHandler_Sign(t *testing.T) {
	t.Run("missing signer rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl))

		r := orgScoped("org-1")
		r.POST("/api/proposals/:id/sign", h.Sign)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals/prop-1/sign",
			bytes.NewBufferString(`{"signer_email":"jane@acme.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conversion returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := orgScoped("org-1")
		r.POST("/api/proposals/:id/sign", h.Sign)

		uc.EXPECT().Sign(gomock.Any(), "org-1", "prop-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, sig usecase.SignatureInput) (usecase.ConversionResult, error) {
				if sig.SignerName != "Jane Doe" || sig.SignerEmail != "jane@acme.test" {
					t.Fatalf("unexpected signature input: %+v", sig)
				}
				return usecase.ConversionResult{
					Proposal:    entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusSigned},
					Engagement:  entities.Engagement{ID: "eng-1"},
					Order:       entities.Order{ID: "order-1"},
					CheckoutURL: "https://pay.example.com/cs_1",
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/proposals/prop-1/sign",
			bytes.NewBufferString(`{"signer_name":"Jane Doe","signer_email":"jane@acme.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["checkout_url"] != "https://pay.example.com/cs_1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_DocumensoWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unrelated event ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl))

		r := gin.New()
		r.POST("/webhooks/documenso", h.DocumensoWebhook)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/documenso",
			bytes.NewBufferString(`{"event":"DOCUMENT_OPENED","payload":{"id":123}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown document acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/webhooks/documenso", h.DocumensoWebhook)

		uc.EXPECT().HandleSignatureEvent(gomock.Any(), "123", gomock.Any()).
			Return(usecase.ConversionResult{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/documenso",
			bytes.NewBufferString(`{"event":"DOCUMENT_COMPLETED","payload":{"id":123}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "unknown_document" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("completion converts with recipient evidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/webhooks/documenso", h.DocumensoWebhook)

		uc.EXPECT().HandleSignatureEvent(gomock.Any(), "123", gomock.Any()).DoAndReturn(
			func(_ any, _ string, sig usecase.SignatureInput) (usecase.ConversionResult, error) {
				if sig.SignerName != "Jane Doe" || sig.SignerEmail != "jane@acme.test" {
					t.Fatalf("unexpected signature input: %+v", sig)
				}
				return usecase.ConversionResult{
					Proposal: entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusSigned},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/documenso",
			bytes.NewBufferString(`{"event":"DOCUMENT_COMPLETED","payload":{"id":123,"recipients":[{"name":"Jane Doe","email":"jane@acme.test"}]}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapUseCaseError(t *testing.T) {
	if got := mapUseCaseError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapUseCaseError(usecase.ErrProposalAlreadySigned); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUseCaseError(usecase.ErrClientEmailTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapUseCaseError(usecase.ErrInvalidCredentials); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapUseCaseError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
