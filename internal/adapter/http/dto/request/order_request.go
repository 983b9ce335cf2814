package request

import (
	"time"

	"service_engine_x/internal/usecase"
)

type CreateOrderRequest struct {
	UserID       string  `json:"user_id" binding:"required"`
	ServiceID    *string `json:"service_id"`
	ServiceName  string  `json:"service_name" binding:"required"`
	Price        float64 `json:"price" binding:"min=0"`
	Currency     string  `json:"currency"`
	Quantity     int     `json:"quantity"`
	Note         string  `json:"note"`
	EngagementID *string `json:"engagement_id"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		UserID:       r.UserID,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		Price:        r.Price,
		Currency:     r.Currency,
		Quantity:     r.Quantity,
		Note:         r.Note,
		EngagementID: r.EngagementID,
	}
}

type UpdateOrderRequest struct {
	ServiceName *string  `json:"service_name"`
	Price       *float64 `json:"price"`
	Status      *int     `json:"status"`
	Note        *string  `json:"note"`
}

func (r UpdateOrderRequest) ToInput() usecase.UpdateOrderInput {
	return usecase.UpdateOrderInput{
		ServiceName: r.ServiceName,
		Price:       r.Price,
		Status:      r.Status,
		Note:        r.Note,
	}
}

type CreateOrderTaskRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description"`
	SortOrder   int        `json:"sort_order"`
	IsPublic    bool       `json:"is_public"`
	ForClient   bool       `json:"for_client"`
	DueAt       *time.Time `json:"due_at"`
}

func (r CreateOrderTaskRequest) ToInput() usecase.CreateOrderTaskInput {
	return usecase.CreateOrderTaskInput{
		Name:        r.Name,
		Description: r.Description,
		SortOrder:   r.SortOrder,
		IsPublic:    r.IsPublic,
		ForClient:   r.ForClient,
		DueAt:       r.DueAt,
	}
}

type CreateOrderMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PaymentWebhookRequest is the payload relayed by the checkout provider.
// external_reference and metadata carry the ids set at preference creation.
type PaymentWebhookRequest struct {
	OrderID string `json:"order_id"`
	OrgID   string `json:"org_id"`
	Status  string `json:"status" binding:"required"`
	Data    struct {
		ExternalReference string            `json:"external_reference"`
		Metadata          map[string]string `json:"metadata"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) ResolveOrderID() string {
	if r.OrderID != "" {
		return r.OrderID
	}
	if v := r.Data.Metadata["order_id"]; v != "" {
		return v
	}
	return r.Data.ExternalReference
}

func (r PaymentWebhookRequest) ResolveOrgID() string {
	if r.OrgID != "" {
		return r.OrgID
	}
	return r.Data.Metadata["org_id"]
}
