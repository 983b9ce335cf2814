package interfaces

import (
	"context"
	"time"

	"service_engine_x/internal/domain/entities"
)

// IAPITokenRepository abstracts DynamoDB persistence for APIToken. Lookup is
// by token hash, never by raw token.

type IAPITokenRepository interface {
	Create(ctx context.Context, t entities.APIToken) (entities.APIToken, error)
	GetByHash(ctx context.Context, tokenHash string) (entities.APIToken, error)
	TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error
}

// IOrganizationRepository abstracts DynamoDB persistence for Organization.

type IOrganizationRepository interface {
	Create(ctx context.Context, o entities.Organization) (entities.Organization, error)
	GetByID(ctx context.Context, id string) (entities.Organization, error)
	List(ctx context.Context) ([]entities.Organization, error)
}
