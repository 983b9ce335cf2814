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

func newProjectUseCaseTest(ctrl *gomock.Controller) (*ProjectUseCase, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIEngagementRepository) {
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	return NewProjectUseCase(projects, engagements), projects, engagements
}

func activeProject(phase entities.ProjectPhase) entities.Project {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Project{
		ID:           "proj-1",
		OrgID:        "org-1",
		EngagementID: "eng-1",
		Name:         "Website build",
		Status:       entities.ProjectStatusActive,
		Phase:        phase,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("unknown engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, engagements := newProjectUseCaseTest(ctrl)

		engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").Return(entities.Engagement{}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateProjectInput{EngagementID: "eng-1", Name: "x"})
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("starts active in kickoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, engagements := newProjectUseCaseTest(ctrl)

		engagements.EXPECT().GetByID(gomock.Any(), "org-1", "eng-1").
			Return(entities.Engagement{ID: "eng-1", OrgID: "org-1"}, nil)
		projects.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusActive || p.Phase != entities.ProjectPhaseKickoff {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), "org-1", CreateProjectInput{EngagementID: "eng-1", Name: "Website build"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("phase can only advance one step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").
			Return(activeProject(entities.ProjectPhaseKickoff), nil)

		build := int(entities.ProjectPhaseBuild)
		_, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Phase: &build})
		if !errors.Is(err, ErrProjectPhaseTransition) {
			t.Fatalf("expected ErrProjectPhaseTransition, got %v", err)
		}
	})

	t.Run("testing may regress to build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").
			Return(activeProject(entities.ProjectPhaseTesting), nil)
		projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Phase != entities.ProjectPhaseBuild {
					t.Fatalf("expected Build, got %d", p.Phase)
				}
				return p, nil
			},
		)

		build := int(entities.ProjectPhaseBuild)
		if _, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Phase: &build}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("handoff is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").
			Return(activeProject(entities.ProjectPhaseHandoff), nil)

		kickoff := int(entities.ProjectPhaseKickoff)
		_, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Phase: &kickoff})
		if !errors.Is(err, ErrProjectPhaseTransition) {
			t.Fatalf("expected ErrProjectPhaseTransition, got %v", err)
		}
	})

	t.Run("unknown phase id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").
			Return(activeProject(entities.ProjectPhaseKickoff), nil)

		bad := 9
		_, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Phase: &bad})
		if !errors.Is(err, ErrInvalidProjectPhase) {
			t.Fatalf("expected ErrInvalidProjectPhase, got %v", err)
		}
	})

	t.Run("completed stamps completed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").
			Return(activeProject(entities.ProjectPhaseDeployment), nil)
		projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusCompleted || p.CompletedAt == nil {
					t.Fatalf("expected Completed with timestamp: %+v", p)
				}
				return p, nil
			},
		)

		completed := int(entities.ProjectStatusCompleted)
		if _, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Status: &completed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopening clears completed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, projects, _ := newProjectUseCaseTest(ctrl)

		done := time.Now().UTC().Add(-time.Hour)
		p := activeProject(entities.ProjectPhaseDeployment)
		p.Status = entities.ProjectStatusCompleted
		p.CompletedAt = &done
		projects.EXPECT().GetByID(gomock.Any(), "org-1", "proj-1").Return(p, nil)
		projects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusActive || p.CompletedAt != nil {
					t.Fatalf("expected reopened project: %+v", p)
				}
				return p, nil
			},
		)

		active := int(entities.ProjectStatusActive)
		if _, err := uc.Update(context.Background(), "org-1", "proj-1", UpdateProjectInput{Status: &active}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
