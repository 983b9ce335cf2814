package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.

type IEngagementRepository interface {
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Engagement, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Engagement, error)
	Update(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
}
