package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
)

type TicketResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Subject     string     `json:"subject"`
	Body        *string    `json:"body,omitempty"`
	Status      int        `json:"status"`
	StatusLabel string     `json:"status_label"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Subject:     t.Subject,
		Body:        t.Body,
		Status:      int(t.Status),
		StatusLabel: entities.TicketStatusLabel(t.Status),
		ClosedAt:    t.ClosedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTickets(list []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTicket(t))
	}
	return out
}

type ConversationResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Subject     string     `json:"subject"`
	Status      int        `json:"status"`
	StatusLabel string     `json:"status_label"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromConversation(c entities.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Subject:     c.Subject,
		Status:      int(c.Status),
		StatusLabel: entities.ConversationStatusLabel(c.Status),
		ClosedAt:    c.ClosedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromConversations(list []entities.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromConversation(c))
	}
	return out
}
