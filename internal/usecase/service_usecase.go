package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidServiceData = errors.New("invalid service data")
)

var (
	ServiceSortable   = []string{"created_at", "updated_at", "name", "price"}
	ServiceFilterable = []string{"name", "recurring", "public", "created_at"}
)

type CreateServiceInput struct {
	Name        string
	Description *string
	Recurring   int
	Price       *float64
	Currency    string
	Public      bool
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	Recurring   *int
	Price       *float64
	Currency    *string
	Public      *bool
}

type IServiceUseCase interface {
	Create(ctx context.Context, orgID string, input CreateServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Service, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Service, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateServiceInput) (entities.Service, error)
	Delete(ctx context.Context, orgID, id string) error
}

type ServiceUseCase struct {
	services interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(services interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{services: services}
}

func (u *ServiceUseCase) Create(ctx context.Context, orgID string, input CreateServiceInput) (entities.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Service{}, fmt.Errorf("%w: name", ErrInvalidServiceData)
	}
	if input.Recurring < 0 || input.Recurring > 2 {
		return entities.Service{}, fmt.Errorf("%w: recurring %d", ErrInvalidServiceData, input.Recurring)
	}
	if input.Price != nil && *input.Price < 0 {
		return entities.Service{}, fmt.Errorf("%w: price", ErrInvalidServiceData)
	}
	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "usd"
	}

	now := time.Now().UTC()
	return u.services.Create(ctx, entities.Service{
		ID:          uuid.NewString(),
		OrgID:       orgID,
		Name:        name,
		Description: input.Description,
		Recurring:   input.Recurring,
		Price:       input.Price,
		Currency:    currency,
		Public:      input.Public,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *ServiceUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Service, error) {
	s, err := u.services.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" || s.DeletedAt != nil {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Service, int, error) {
	all, err := u.services.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if s.DeletedAt == nil {
			live = append(live, s)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, serviceField)
	return page, total, nil
}

func serviceField(s entities.Service, field string) (string, bool) {
	switch field {
	case "name":
		return s.Name, true
	case "recurring":
		return fmt.Sprintf("%d", s.Recurring), true
	case "public":
		return fmt.Sprintf("%t", s.Public), true
	case "price":
		if s.Price == nil {
			return "", true
		}
		return fmt.Sprintf("%f", *s.Price), true
	case "created_at":
		return s.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return s.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *ServiceUseCase) Update(ctx context.Context, orgID, id string, input UpdateServiceInput) (entities.Service, error) {
	s, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Service{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Service{}, fmt.Errorf("%w: name", ErrInvalidServiceData)
		}
		s.Name = name
	}
	if input.Description != nil {
		s.Description = input.Description
	}
	if input.Recurring != nil {
		if *input.Recurring < 0 || *input.Recurring > 2 {
			return entities.Service{}, fmt.Errorf("%w: recurring %d", ErrInvalidServiceData, *input.Recurring)
		}
		s.Recurring = *input.Recurring
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return entities.Service{}, fmt.Errorf("%w: price", ErrInvalidServiceData)
		}
		s.Price = input.Price
	}
	if input.Currency != nil {
		s.Currency = strings.ToLower(strings.TrimSpace(*input.Currency))
	}
	if input.Public != nil {
		s.Public = *input.Public
	}

	updated, err := u.services.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, orgID, id string) error {
	if _, err := u.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	deleted, err := u.services.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrServiceNotFound
	}
	return nil
}
