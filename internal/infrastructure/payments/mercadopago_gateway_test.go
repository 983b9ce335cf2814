package payments

import (
	"context"
	"strings"
	"testing"

	"service_engine_x/internal/usecase/interfaces"
)

func TestBuildPreferenceRequest(t *testing.T) {
	req := interfaces.CheckoutRequest{
		Items: []interfaces.CheckoutItem{
			{Name: "Design", Description: "Logo design", AmountCents: 10000, Quantity: 1},
			{Name: "Build", AmountCents: 2050, Quantity: 2},
		},
		CustomerEmail: "jane@acme.test",
		Metadata: map[string]string{
			"proposal_id": "prop-1",
			"order_id":    "order-1",
			"org_id":      "org-1",
		},
		SuccessURL: "https://app.example.com/proposals/prop-1/paid",
		CancelURL:  "https://app.example.com/proposals/prop-1",
	}

	pref := buildPreferenceRequest(req, "USD")

	if len(pref.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(pref.Items))
	}
	if pref.Items[0].Title != "Design" || pref.Items[0].UnitPrice != 100 || pref.Items[0].CurrencyID != "USD" {
		t.Fatalf("unexpected first item: %+v", pref.Items[0])
	}
	if pref.Items[1].UnitPrice != 20.5 || pref.Items[1].Quantity != 2 {
		t.Fatalf("unexpected second item: %+v", pref.Items[1])
	}
	if pref.ExternalReference != "order-1" {
		t.Fatalf("external reference must carry the order id, got %q", pref.ExternalReference)
	}
	if pref.Metadata["order_id"] != "order-1" || pref.Metadata["org_id"] != "org-1" {
		t.Fatalf("unexpected metadata: %+v", pref.Metadata)
	}
	if pref.Payer == nil || pref.Payer.Email != "jane@acme.test" {
		t.Fatalf("unexpected payer: %+v", pref.Payer)
	}
	if pref.BackURLs == nil || pref.BackURLs.Success != req.SuccessURL || pref.BackURLs.Failure != req.CancelURL {
		t.Fatalf("unexpected back urls: %+v", pref.BackURLs)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutRequest{
		Items:         []interfaces.CheckoutItem{{Name: "Design", AmountCents: 10000, Quantity: 1}},
		CustomerEmail: "jane@acme.test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID == "" || !strings.Contains(session.CheckoutURL, session.SessionID) {
		t.Fatalf("unexpected session: %+v", session)
	}
}
