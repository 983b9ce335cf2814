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

type engagementDeps struct {
	engagements *mock_interfaces.MockIEngagementRepository
	projects    *mock_interfaces.MockIProjectRepository
	clients     *mock_interfaces.MockIClientRepository
}

func newEngagementUseCaseTest(ctrl *gomock.Controller) (*EngagementUseCase, engagementDeps) {
	d := engagementDeps{
		engagements: mock_interfaces.NewMockIEngagementRepository(ctrl),
		projects:    mock_interfaces.NewMockIProjectRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
	}
	return NewEngagementUseCase(d.engagements, d.projects, d.clients), d
}

func TestEngagementUseCase_Create(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateEngagementInput{ClientID: "client-1", Name: "Acme"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("create starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").
			Return(entities.Client{ID: "client-1"}, nil)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Engagement{})).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.Status != entities.EngagementStatusActive || e.ClientID != "client-1" {
					t.Fatalf("unexpected engagement: %+v", e)
				}
				return e, nil
			},
		)

		e, err := uc.Create(context.Background(), "org-1", CreateEngagementInput{ClientID: "client-1", Name: "Acme"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEngagementUseCase_ListProjects(t *testing.T) {
	t.Run("unknown engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").Return(entities.Engagement{}, nil)

		_, err := uc.ListProjects(context.Background(), "org-1", "eng-1")
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("lists projects under the engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").
			Return(entities.Engagement{ID: "eng-1"}, nil)
		d.projects.EXPECT().ListByEngagement(gomock.Any(), "org-1", "eng-1").
			Return([]entities.Project{{ID: "p1"}, {ID: "p2"}}, nil)

		projects, err := uc.ListProjects(context.Background(), "org-1", "eng-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(projects))
		}
	})
}

func TestEngagementUseCase_Update(t *testing.T) {
	active := entities.Engagement{ID: "eng-1", OrgID: "org-1", Name: "Acme", Status: entities.EngagementStatusActive}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").Return(active, nil)

		bad := 42
		_, err := uc.Update(context.Background(), "org-1", "eng-1", UpdateEngagementInput{Status: &bad})
		if !errors.Is(err, ErrInvalidEngagementStatus) {
			t.Fatalf("expected ErrInvalidEngagementStatus, got %v", err)
		}
	})

	t.Run("closing stamps closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		d.engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").Return(active, nil)
		d.engagements.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.Status != entities.EngagementStatusClosed || e.ClosedAt == nil {
					t.Fatalf("expected Closed with timestamp: %+v", e)
				}
				return e, nil
			},
		)

		closed := int(entities.EngagementStatusClosed)
		if _, err := uc.Update(context.Background(), "org-1", "eng-1", UpdateEngagementInput{Status: &closed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopening clears closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngagementUseCaseTest(ctrl)

		when := time.Now().UTC().Add(-time.Hour)
		closed := active
		closed.Status = entities.EngagementStatusClosed
		closed.ClosedAt = &when
		d.engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").Return(closed, nil)
		d.engagements.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.Status != entities.EngagementStatusActive || e.ClosedAt != nil {
					t.Fatalf("expected reopened engagement: %+v", e)
				}
				return e, nil
			},
		)

		reopen := int(entities.EngagementStatusActive)
		if _, err := uc.Update(context.Background(), "org-1", "eng-1", UpdateEngagementInput{Status: &reopen}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
