package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"service_engine_x/internal/domain/entities"
	mock_interfaces "service_engine_x/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newServiceUseCaseTest(ctrl *gomock.Controller) (*ServiceUseCase, *mock_interfaces.MockIServiceRepository) {
	services := mock_interfaces.NewMockIServiceRepository(ctrl)
	return NewServiceUseCase(services), services
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc, _ := newServiceUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateServiceInput{Name: "  "})
		if !errors.Is(err, ErrInvalidServiceData) {
			t.Fatalf("expected ErrInvalidServiceData, got %v", err)
		}
	})

	t.Run("recurring out of range", func(t *testing.T) {
		uc, _ := newServiceUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateServiceInput{Name: "Audit", Recurring: 3})
		if !errors.Is(err, ErrInvalidServiceData) {
			t.Fatalf("expected ErrInvalidServiceData, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc, _ := newServiceUseCaseTest(gomock.NewController(t))
		price := -1.0
		_, err := uc.Create(context.Background(), "org-1", CreateServiceInput{Name: "Audit", Price: &price})
		if !errors.Is(err, ErrInvalidServiceData) {
			t.Fatalf("expected ErrInvalidServiceData, got %v", err)
		}
	})

	t.Run("currency lowercased with usd default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services := newServiceUseCaseTest(ctrl)

		services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Currency != "eur" || s.Name != "Audit" || s.ID == "" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)
		services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Currency != "usd" {
					t.Fatalf("expected usd default, got %q", s.Currency)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), "org-1", CreateServiceInput{Name: " Audit ", Currency: " EUR "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Create(context.Background(), "org-1", CreateServiceInput{Name: "Audit"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	existing := entities.Service{ID: "svc-1", OrgID: "org-1", Name: "Audit", Currency: "usd"}

	t.Run("blanked name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services := newServiceUseCaseTest(ctrl)

		services.EXPECT().GetByID(gomock.Any(), "org-1", "svc-1").Return(existing, nil)

		blank := " "
		_, err := uc.Update(context.Background(), "org-1", "svc-1", UpdateServiceInput{Name: &blank})
		if !errors.Is(err, ErrInvalidServiceData) {
			t.Fatalf("expected ErrInvalidServiceData, got %v", err)
		}
	})

	t.Run("patches selected fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services := newServiceUseCaseTest(ctrl)

		services.EXPECT().GetByID(gomock.Any(), "org-1", "svc-1").Return(existing, nil)
		services.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Price == nil || *s.Price != 250 || s.Recurring != 1 || !s.Public {
					t.Fatalf("unexpected service: %+v", s)
				}
				if s.Name != "Audit" {
					t.Fatalf("untouched field changed: %+v", s)
				}
				return s, nil
			},
		)

		price := 250.0
		recurring := 1
		public := true
		_, err := uc.Update(context.Background(), "org-1", "svc-1", UpdateServiceInput{
			Price:     &price,
			Recurring: &recurring,
			Public:    &public,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, services := newServiceUseCaseTest(ctrl)

	gone := time.Now().UTC()
	services.EXPECT().ListByOrg(gomock.Any(), "org-1").Return([]entities.Service{
		{ID: "svc-1", Name: "Audit"},
		{ID: "svc-2", Name: "Retainer", DeletedAt: &gone},
		{ID: "svc-3", Name: "Build"},
	}, nil)

	page, total, err := uc.List(context.Background(), "org-1", defaultListQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(page) != 2 {
		t.Fatalf("expected the deleted service hidden, got total=%d len=%d", total, len(page))
	}
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("already deleted reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services := newServiceUseCaseTest(ctrl)

		gone := time.Now().UTC()
		services.EXPECT().GetByID(gomock.Any(), "org-1", "svc-1").
			Return(entities.Service{ID: "svc-1", DeletedAt: &gone}, nil)

		if err := uc.Delete(context.Background(), "org-1", "svc-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("soft deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services := newServiceUseCaseTest(ctrl)

		services.EXPECT().GetByID(gomock.Any(), "org-1", "svc-1").
			Return(entities.Service{ID: "svc-1"}, nil)
		services.EXPECT().SoftDelete(gomock.Any(), "org-1", "svc-1").
			Return(entities.Service{ID: "svc-1"}, nil)

		if err := uc.Delete(context.Background(), "org-1", "svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
