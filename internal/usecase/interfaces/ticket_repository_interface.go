package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Ticket, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Ticket, error)
	Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	Delete(ctx context.Context, orgID, id string) (entities.Ticket, error)
}

// IConversationRepository abstracts DynamoDB persistence for Conversation.

type IConversationRepository interface {
	Create(ctx context.Context, c entities.Conversation) (entities.Conversation, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Conversation, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Conversation, error)
	Update(ctx context.Context, c entities.Conversation) (entities.Conversation, error)
	Delete(ctx context.Context, orgID, id string) (entities.Conversation, error)
}
