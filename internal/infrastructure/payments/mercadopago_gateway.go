package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"service_engine_x/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrCheckoutGatewayNotConfigured = errors.New("checkout gateway not configured")

// MercadoPagoGateway creates hosted checkout sessions through the Mercado
// Pago preference API. The init_point URL is where the signer pays.
type MercadoPagoGateway struct {
	client   preference.Client
	currency string
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	currency := strings.ToUpper(strings.TrimSpace(os.Getenv("CHECKOUT_CURRENCY")))
	if currency == "" {
		currency = "USD"
	}

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currency: currency}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currency: currency}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock checkout success session_id=%s items=%d", id, len(req.Items))
		return interfaces.CheckoutSession{
			SessionID:   id,
			CheckoutURL: fmt.Sprintf("https://checkout.invalid/session/%s", id),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrCheckoutGatewayNotConfigured
	}
	log.Printf("[payment][gateway] checkout start items=%d customer=%s", len(req.Items), req.CustomerEmail)

	resp, err := g.client.Create(ctx, buildPreferenceRequest(req, g.currency))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][gateway] checkout success session_id=%s", resp.ID)
	return interfaces.CheckoutSession{SessionID: resp.ID, CheckoutURL: resp.InitPoint}, nil
}

// buildPreferenceRequest maps a checkout request onto the preference API.
// external_reference carries the order id so the payment webhook can resolve
// the order from payloads that omit metadata.
func buildPreferenceRequest(req interfaces.CheckoutRequest, currency string) preference.Request {
	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, preference.ItemRequest{
			Title:       it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   float64(it.AmountCents) / 100,
			CurrencyID:  currency,
		})
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	return preference.Request{
		Items:    items,
		Metadata: metadata,
		Payer:    &preference.PayerRequest{Email: req.CustomerEmail},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.CancelURL,
			Pending: req.SuccessURL,
		},
		ExternalReference: req.Metadata["order_id"],
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
