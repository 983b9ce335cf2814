package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/pkg"
)

type OrderMetadataItemResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price"`
	ServiceID   *string `json:"service_id,omitempty"`
}

type OrderMetadataResponse struct {
	ProposalID    string                      `json:"proposal_id,omitempty"`
	EngagementID  string                      `json:"engagement_id,omitempty"`
	SignedVia     string                      `json:"signed_via,omitempty"`
	ProposalItems []OrderMetadataItemResponse `json:"proposal_items,omitempty"`
}

type OrderResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	UserID       string                `json:"user_id"`
	ServiceID    *string               `json:"service_id,omitempty"`
	ServiceName  string                `json:"service_name"`
	Price        string                `json:"price"`
	Currency     string                `json:"currency"`
	Quantity     int                   `json:"quantity"`
	Status       int                   `json:"status"`
	StatusLabel  string                `json:"status_label"`
	EngagementID *string               `json:"engagement_id,omitempty"`
	Note         string                `json:"note,omitempty"`
	Metadata     OrderMetadataResponse `json:"metadata"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	metaItems := make([]OrderMetadataItemResponse, 0, len(o.Metadata.ProposalItems))
	for _, it := range o.Metadata.ProposalItems {
		metaItems = append(metaItems, OrderMetadataItemResponse{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			ServiceID:   it.ServiceID,
		})
	}
	return OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		UserID:       o.UserID,
		ServiceID:    o.ServiceID,
		ServiceName:  o.ServiceName,
		Price:        pkg.FormatCurrency(o.Price),
		Currency:     o.Currency,
		Quantity:     o.Quantity,
		Status:       int(o.Status),
		StatusLabel:  entities.OrderStatusLabel(o.Status),
		EngagementID: o.EngagementID,
		Note:         o.Note,
		Metadata: OrderMetadataResponse{
			ProposalID:    o.Metadata.ProposalID,
			EngagementID:  o.Metadata.EngagementID,
			SignedVia:     o.Metadata.SignedVia,
			ProposalItems: metaItems,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(list []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderTaskResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	SortOrder   int        `json:"sort_order"`
	IsPublic    bool       `json:"is_public"`
	ForClient   bool       `json:"for_client"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromOrderTask(t entities.OrderTask) OrderTaskResponse {
	return OrderTaskResponse{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Name:        t.Name,
		Description: t.Description,
		SortOrder:   t.SortOrder,
		IsPublic:    t.IsPublic,
		ForClient:   t.ForClient,
		DueAt:       t.DueAt,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromOrderTasks(list []entities.OrderTask) []OrderTaskResponse {
	out := make([]OrderTaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromOrderTask(t))
	}
	return out
}

type OrderMessageResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromOrderMessage(m entities.OrderMessage) OrderMessageResponse {
	return OrderMessageResponse{
		ID:        m.ID,
		OrderID:   m.OrderID,
		UserID:    m.UserID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func FromOrderMessages(list []entities.OrderMessage) []OrderMessageResponse {
	out := make([]OrderMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromOrderMessage(m))
	}
	return out
}
