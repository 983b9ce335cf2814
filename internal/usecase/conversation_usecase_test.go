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

func newConversationUseCaseTest(ctrl *gomock.Controller) (*ConversationUseCase, *mock_interfaces.MockIConversationRepository, *mock_interfaces.MockIClientRepository) {
	conversations := mock_interfaces.NewMockIConversationRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	return NewConversationUseCase(conversations, clients), conversations, clients
}

func TestConversationUseCase_Create(t *testing.T) {
	t.Run("empty subject", func(t *testing.T) {
		uc, _, _ := newConversationUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateConversationInput{UserID: "client-1"})
		if !errors.Is(err, ErrEmptyConversationSubject) {
			t.Fatalf("expected ErrEmptyConversationSubject, got %v", err)
		}
	})

	t.Run("soft deleted client rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clients := newConversationUseCaseTest(ctrl)

		gone := time.Now().UTC()
		clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").
			Return(entities.Client{ID: "client-1", DeletedAt: &gone}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateConversationInput{UserID: "client-1", Subject: "Kickoff"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("opens for an existing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, conversations, clients := newConversationUseCaseTest(ctrl)

		clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").
			Return(entities.Client{ID: "client-1"}, nil)
		conversations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Conversation{})).DoAndReturn(
			func(_ context.Context, c entities.Conversation) (entities.Conversation, error) {
				if c.Status != entities.ConversationStatusOpen || c.Subject != "Kickoff" || c.ID == "" {
					t.Fatalf("unexpected conversation: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), "org-1", CreateConversationInput{UserID: "client-1", Subject: " Kickoff "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConversationUseCase_Update(t *testing.T) {
	open := entities.Conversation{ID: "conv-1", OrgID: "org-1", UserID: "client-1", Subject: "Kickoff", Status: entities.ConversationStatusOpen}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, conversations, _ := newConversationUseCaseTest(ctrl)

		conversations.EXPECT().GetByID(gomock.Any(), "org-1", "conv-1").Return(open, nil)

		bad := 7
		_, err := uc.Update(context.Background(), "org-1", "conv-1", UpdateConversationInput{Status: &bad})
		if !errors.Is(err, ErrInvalidConversationStatus) {
			t.Fatalf("expected ErrInvalidConversationStatus, got %v", err)
		}
	})

	t.Run("closing stamps closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, conversations, _ := newConversationUseCaseTest(ctrl)

		conversations.EXPECT().GetByID(gomock.Any(), "org-1", "conv-1").Return(open, nil)
		conversations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Conversation) (entities.Conversation, error) {
				if c.Status != entities.ConversationStatusClosed || c.ClosedAt == nil {
					t.Fatalf("expected Closed with timestamp: %+v", c)
				}
				return c, nil
			},
		)

		closed := int(entities.ConversationStatusClosed)
		if _, err := uc.Update(context.Background(), "org-1", "conv-1", UpdateConversationInput{Status: &closed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopening clears closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, conversations, _ := newConversationUseCaseTest(ctrl)

		when := time.Now().UTC().Add(-time.Hour)
		closed := open
		closed.Status = entities.ConversationStatusClosed
		closed.ClosedAt = &when
		conversations.EXPECT().GetByID(gomock.Any(), "org-1", "conv-1").Return(closed, nil)
		conversations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Conversation) (entities.Conversation, error) {
				if c.Status != entities.ConversationStatusOpen || c.ClosedAt != nil {
					t.Fatalf("expected reopened conversation: %+v", c)
				}
				return c, nil
			},
		)

		reopen := int(entities.ConversationStatusOpen)
		if _, err := uc.Update(context.Background(), "org-1", "conv-1", UpdateConversationInput{Status: &reopen}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConversationUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, conversations, _ := newConversationUseCaseTest(ctrl)

	conversations.EXPECT().Delete(gomock.Any(), "org-1", "conv-9").Return(entities.Conversation{}, nil)

	if err := uc.Delete(context.Background(), "org-1", "conv-9"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}
