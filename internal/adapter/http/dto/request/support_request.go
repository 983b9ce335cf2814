package request

import "service_engine_x/internal/usecase"

// Tickets and conversations.

type CreateTicketRequest struct {
	UserID  string  `json:"user_id" binding:"required"`
	Subject string  `json:"subject" binding:"required"`
	Body    *string `json:"body"`
}

func (r CreateTicketRequest) ToInput() usecase.CreateTicketInput {
	return usecase.CreateTicketInput{UserID: r.UserID, Subject: r.Subject, Body: r.Body}
}

type UpdateTicketRequest struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
	Status  *int    `json:"status"`
}

func (r UpdateTicketRequest) ToInput() usecase.UpdateTicketInput {
	return usecase.UpdateTicketInput{Subject: r.Subject, Body: r.Body, Status: r.Status}
}

type CreateConversationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

func (r CreateConversationRequest) ToInput() usecase.CreateConversationInput {
	return usecase.CreateConversationInput{UserID: r.UserID, Subject: r.Subject}
}

type UpdateConversationRequest struct {
	Subject *string `json:"subject"`
	Status  *int    `json:"status"`
}

func (r UpdateConversationRequest) ToInput() usecase.UpdateConversationInput {
	return usecase.UpdateConversationInput{Subject: r.Subject, Status: r.Status}
}
