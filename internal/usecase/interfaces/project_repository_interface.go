package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Project, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Project, error)
	ListByEngagement(ctx context.Context, orgID, engagementID string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}
