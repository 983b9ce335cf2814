package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service (the catalog).

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Service, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Service, error)
	ListByIDs(ctx context.Context, orgID string, ids []string) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Service, error)
}
