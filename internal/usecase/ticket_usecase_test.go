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

func newTicketUseCaseTest(ctrl *gomock.Controller) (*TicketUseCase, *mock_interfaces.MockITicketRepository, *mock_interfaces.MockIClientRepository) {
	tickets := mock_interfaces.NewMockITicketRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	return NewTicketUseCase(tickets, clients), tickets, clients
}

func TestTicketUseCase_Create(t *testing.T) {
	t.Run("empty subject", func(t *testing.T) {
		uc, _, _ := newTicketUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateTicketInput{UserID: "client-1", Subject: "  "})
		if !errors.Is(err, ErrEmptyTicketSubject) {
			t.Fatalf("expected ErrEmptyTicketSubject, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clients := newTicketUseCaseTest(ctrl)

		clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateTicketInput{UserID: "client-1", Subject: "Login broken"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("opens for an existing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, clients := newTicketUseCaseTest(ctrl)

		clients.EXPECT().GetByID(gomock.Any(), "org-1", "client-1").
			Return(entities.Client{ID: "client-1"}, nil)
		tickets.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Ticket{})).DoAndReturn(
			func(_ context.Context, tk entities.Ticket) (entities.Ticket, error) {
				if tk.Status != entities.TicketStatusOpen || tk.Subject != "Login broken" || tk.ID == "" {
					t.Fatalf("unexpected ticket: %+v", tk)
				}
				return tk, nil
			},
		)

		if _, err := uc.Create(context.Background(), "org-1", CreateTicketInput{UserID: "client-1", Subject: " Login broken "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTicketUseCase_Update(t *testing.T) {
	open := entities.Ticket{ID: "tick-1", OrgID: "org-1", UserID: "client-1", Subject: "Login broken", Status: entities.TicketStatusOpen}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		tickets.EXPECT().GetByID(gomock.Any(), "org-1", "tick-1").Return(open, nil)

		bad := 9
		_, err := uc.Update(context.Background(), "org-1", "tick-1", UpdateTicketInput{Status: &bad})
		if !errors.Is(err, ErrInvalidTicketStatus) {
			t.Fatalf("expected ErrInvalidTicketStatus, got %v", err)
		}
	})

	t.Run("closing stamps closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		tickets.EXPECT().GetByID(gomock.Any(), "org-1", "tick-1").Return(open, nil)
		tickets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk entities.Ticket) (entities.Ticket, error) {
				if tk.Status != entities.TicketStatusClosed || tk.ClosedAt == nil {
					t.Fatalf("expected Closed with timestamp: %+v", tk)
				}
				return tk, nil
			},
		)

		closed := int(entities.TicketStatusClosed)
		if _, err := uc.Update(context.Background(), "org-1", "tick-1", UpdateTicketInput{Status: &closed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopening clears closed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		when := time.Now().UTC().Add(-time.Hour)
		closed := open
		closed.Status = entities.TicketStatusClosed
		closed.ClosedAt = &when
		tickets.EXPECT().GetByID(gomock.Any(), "org-1", "tick-1").Return(closed, nil)
		tickets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk entities.Ticket) (entities.Ticket, error) {
				if tk.Status != entities.TicketStatusPending || tk.ClosedAt != nil {
					t.Fatalf("expected reopened ticket: %+v", tk)
				}
				return tk, nil
			},
		)

		pending := int(entities.TicketStatusPending)
		if _, err := uc.Update(context.Background(), "org-1", "tick-1", UpdateTicketInput{Status: &pending}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blanked subject rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		tickets.EXPECT().GetByID(gomock.Any(), "org-1", "tick-1").Return(open, nil)

		blank := " "
		_, err := uc.Update(context.Background(), "org-1", "tick-1", UpdateTicketInput{Subject: &blank})
		if !errors.Is(err, ErrEmptyTicketSubject) {
			t.Fatalf("expected ErrEmptyTicketSubject, got %v", err)
		}
	})
}

func TestTicketUseCase_Delete(t *testing.T) {
	t.Run("missing ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		tickets.EXPECT().Delete(gomock.Any(), "org-1", "tick-9").Return(entities.Ticket{}, nil)

		if err := uc.Delete(context.Background(), "org-1", "tick-9"); !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCaseTest(ctrl)

		tickets.EXPECT().Delete(gomock.Any(), "org-1", "tick-1").
			Return(entities.Ticket{ID: "tick-1"}, nil)

		if err := uc.Delete(context.Background(), "org-1", "tick-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
