package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order. Create is a
// conditional insert; ErrDuplicateOrderNumber-style collisions surface as a
// zero-value return so callers can regenerate the number.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Order, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, orgID, id string) (entities.Order, error)
}

// IOrderTaskRepository abstracts DynamoDB persistence for OrderTask.

type IOrderTaskRepository interface {
	Create(ctx context.Context, t entities.OrderTask) (entities.OrderTask, error)
	GetByID(ctx context.Context, orgID, id string) (entities.OrderTask, error)
	ListByOrder(ctx context.Context, orgID, orderID string) ([]entities.OrderTask, error)
	Update(ctx context.Context, t entities.OrderTask) (entities.OrderTask, error)
	Delete(ctx context.Context, orgID, id string) (entities.OrderTask, error)
}

// IOrderMessageRepository abstracts DynamoDB persistence for OrderMessage.

type IOrderMessageRepository interface {
	Create(ctx context.Context, m entities.OrderMessage) (entities.OrderMessage, error)
	GetByID(ctx context.Context, orgID, id string) (entities.OrderMessage, error)
	ListByOrder(ctx context.Context, orgID, orderID string) ([]entities.OrderMessage, error)
	Delete(ctx context.Context, orgID, id string) (entities.OrderMessage, error)
}
