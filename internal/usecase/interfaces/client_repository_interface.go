package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client (the users
// table). GetByEmail is the find-or-create hook used by the proposal
// conversion workflow.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Client, error)
	GetByEmail(ctx context.Context, orgID, email string) (entities.Client, error)
	GetByEmailAnyOrg(ctx context.Context, email string) (entities.Client, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Client, error)
}
