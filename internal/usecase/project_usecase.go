package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrInvalidProjectStatus   = errors.New("invalid project status")
	ErrInvalidProjectPhase    = errors.New("invalid project phase")
	ErrProjectPhaseTransition = errors.New("illegal project phase transition")
)

var (
	ProjectSortable   = []string{"created_at", "updated_at", "name", "status", "phase"}
	ProjectFilterable = []string{"status", "phase", "engagement_id", "created_at"}
)

type CreateProjectInput struct {
	EngagementID string
	Name         string
	Description  *string
	ServiceID    *string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *int
	Phase       *int
}

// IProjectUseCase exposes project operations. Phase changes walk the ordered
// delivery progression; status Completed stamps completed_at.

type IProjectUseCase interface {
	Create(ctx context.Context, orgID string, input CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Project, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Project, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateProjectInput) (entities.Project, error)
}

type ProjectUseCase struct {
	projects    interfaces.IProjectRepository
	engagements interfaces.IEngagementRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, engagements interfaces.IEngagementRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, engagements: engagements}
}

func (u *ProjectUseCase) Create(ctx context.Context, orgID string, input CreateProjectInput) (entities.Project, error) {
	engagement, err := u.engagements.GetByID(ctx, orgID, input.EngagementID)
	if err != nil {
		return entities.Project{}, err
	}
	if engagement.ID == "" {
		return entities.Project{}, ErrEngagementNotFound
	}

	now := time.Now().UTC()
	return u.projects.Create(ctx, entities.Project{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		EngagementID: input.EngagementID,
		Name:         input.Name,
		Description:  input.Description,
		Status:       entities.ProjectStatusActive,
		Phase:        entities.ProjectPhaseKickoff,
		ServiceID:    input.ServiceID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (u *ProjectUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Project, error) {
	p, err := u.projects.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Project, int, error) {
	all, err := u.projects.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	page, total := pkg.ApplyListQuery(all, q, projectField)
	return page, total, nil
}

func projectField(p entities.Project, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(p.Status)), true
	case "phase":
		return fmt.Sprintf("%d", int(p.Phase)), true
	case "name":
		return p.Name, true
	case "engagement_id":
		return p.EngagementID, true
	case "created_at":
		return p.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return p.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *ProjectUseCase) Update(ctx context.Context, orgID, id string, input UpdateProjectInput) (entities.Project, error) {
	p, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Project{}, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Phase != nil {
		next := entities.ProjectPhase(*input.Phase)
		if _, ok := entities.ProjectPhaseMap[next]; !ok {
			return entities.Project{}, fmt.Errorf("%w: %d", ErrInvalidProjectPhase, *input.Phase)
		}
		if !entities.CanTransitionProjectPhase(p.Phase, next) {
			return entities.Project{}, fmt.Errorf("%w: %s -> %s",
				ErrProjectPhaseTransition,
				entities.ProjectPhaseLabel(p.Phase),
				entities.ProjectPhaseLabel(next))
		}
		p.Phase = next
	}
	if input.Status != nil {
		next := entities.ProjectStatus(*input.Status)
		if _, ok := entities.ProjectStatusMap[next]; !ok {
			return entities.Project{}, fmt.Errorf("%w: %d", ErrInvalidProjectStatus, *input.Status)
		}
		if next == entities.ProjectStatusCompleted && p.Status != entities.ProjectStatusCompleted {
			now := time.Now().UTC()
			p.CompletedAt = &now
		}
		if next != entities.ProjectStatusCompleted {
			p.CompletedAt = nil
		}
		p.Status = next
	}

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}
