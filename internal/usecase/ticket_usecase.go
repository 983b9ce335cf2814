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
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrEmptyTicketSubject  = errors.New("ticket subject is required")
)

var (
	TicketSortable   = []string{"created_at", "updated_at", "status", "subject"}
	TicketFilterable = []string{"status", "user_id", "created_at"}
)

type CreateTicketInput struct {
	UserID  string
	Subject string
	Body    *string
}

type UpdateTicketInput struct {
	Subject *string
	Body    *string
	Status  *int
}

type ITicketUseCase interface {
	Create(ctx context.Context, orgID string, input CreateTicketInput) (entities.Ticket, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Ticket, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Ticket, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateTicketInput) (entities.Ticket, error)
	Delete(ctx context.Context, orgID, id string) error
}

type TicketUseCase struct {
	tickets interfaces.ITicketRepository
	clients interfaces.IClientRepository
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(tickets interfaces.ITicketRepository, clients interfaces.IClientRepository) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, clients: clients}
}

func (u *TicketUseCase) Create(ctx context.Context, orgID string, input CreateTicketInput) (entities.Ticket, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return entities.Ticket{}, ErrEmptyTicketSubject
	}

	client, err := u.clients.GetByID(ctx, orgID, input.UserID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if client.ID == "" || client.DeletedAt != nil {
		return entities.Ticket{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	return u.tickets.Create(ctx, entities.Ticket{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		UserID:    input.UserID,
		Subject:   subject,
		Body:      input.Body,
		Status:    entities.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *TicketUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Ticket, error) {
	t, err := u.tickets.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Ticket, int, error) {
	all, err := u.tickets.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	page, total := pkg.ApplyListQuery(all, q, ticketField)
	return page, total, nil
}

func ticketField(t entities.Ticket, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(t.Status)), true
	case "subject":
		return t.Subject, true
	case "user_id":
		return t.UserID, true
	case "created_at":
		return t.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return t.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *TicketUseCase) Update(ctx context.Context, orgID, id string, input UpdateTicketInput) (entities.Ticket, error) {
	t, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Ticket{}, err
	}

	if input.Subject != nil {
		subject := strings.TrimSpace(*input.Subject)
		if subject == "" {
			return entities.Ticket{}, ErrEmptyTicketSubject
		}
		t.Subject = subject
	}
	if input.Body != nil {
		t.Body = input.Body
	}
	if input.Status != nil {
		next := entities.TicketStatus(*input.Status)
		if _, ok := entities.TicketStatusMap[next]; !ok {
			return entities.Ticket{}, fmt.Errorf("%w: %d", ErrInvalidTicketStatus, *input.Status)
		}
		if next == entities.TicketStatusClosed && t.Status != entities.TicketStatusClosed {
			now := time.Now().UTC()
			t.ClosedAt = &now
		}
		if next != entities.TicketStatusClosed {
			t.ClosedAt = nil
		}
		t.Status = next
	}

	updated, err := u.tickets.Update(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}

func (u *TicketUseCase) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := u.tickets.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrTicketNotFound
	}
	return nil
}
