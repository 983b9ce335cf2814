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
	ErrEngagementNotFound      = errors.New("engagement not found")
	ErrInvalidEngagementStatus = errors.New("invalid engagement status")
)

var (
	EngagementSortable   = []string{"created_at", "updated_at", "name", "status"}
	EngagementFilterable = []string{"status", "client_id", "created_at"}
)

type CreateEngagementInput struct {
	ClientID string
	Name     string
}

type UpdateEngagementInput struct {
	Name   *string
	Status *int
}

type IEngagementUseCase interface {
	Create(ctx context.Context, orgID string, input CreateEngagementInput) (entities.Engagement, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Engagement, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Engagement, int, error)
	ListProjects(ctx context.Context, orgID, id string) ([]entities.Project, error)
	Update(ctx context.Context, orgID, id string, input UpdateEngagementInput) (entities.Engagement, error)
}

type EngagementUseCase struct {
	engagements interfaces.IEngagementRepository
	projects    interfaces.IProjectRepository
	clients     interfaces.IClientRepository
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(engagements interfaces.IEngagementRepository, projects interfaces.IProjectRepository, clients interfaces.IClientRepository) *EngagementUseCase {
	return &EngagementUseCase{engagements: engagements, projects: projects, clients: clients}
}

func (u *EngagementUseCase) Create(ctx context.Context, orgID string, input CreateEngagementInput) (entities.Engagement, error) {
	client, err := u.clients.GetByID(ctx, orgID, input.ClientID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if client.ID == "" || client.DeletedAt != nil {
		return entities.Engagement{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	return u.engagements.Create(ctx, entities.Engagement{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		ClientID:  input.ClientID,
		Name:      input.Name,
		Status:    entities.EngagementStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *EngagementUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Engagement, error) {
	e, err := u.engagements.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return e, nil
}

func (u *EngagementUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Engagement, int, error) {
	all, err := u.engagements.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	page, total := pkg.ApplyListQuery(all, q, engagementField)
	return page, total, nil
}

func engagementField(e entities.Engagement, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(e.Status)), true
	case "name":
		return e.Name, true
	case "client_id":
		return e.ClientID, true
	case "created_at":
		return e.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return e.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *EngagementUseCase) ListProjects(ctx context.Context, orgID, id string) ([]entities.Project, error) {
	if _, err := u.GetByID(ctx, orgID, id); err != nil {
		return nil, err
	}
	return u.projects.ListByEngagement(ctx, orgID, id)
}

func (u *EngagementUseCase) Update(ctx context.Context, orgID, id string, input UpdateEngagementInput) (entities.Engagement, error) {
	e, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Engagement{}, err
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Status != nil {
		next := entities.EngagementStatus(*input.Status)
		if _, ok := entities.EngagementStatusMap[next]; !ok {
			return entities.Engagement{}, fmt.Errorf("%w: %d", ErrInvalidEngagementStatus, *input.Status)
		}
		if next == entities.EngagementStatusClosed && e.Status != entities.EngagementStatusClosed {
			now := time.Now().UTC()
			e.ClosedAt = &now
		}
		if next != entities.EngagementStatusClosed {
			e.ClosedAt = nil
		}
		e.Status = next
	}

	updated, err := u.engagements.Update(ctx, e)
	if err != nil {
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return updated, nil
}
