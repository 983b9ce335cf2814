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
	ErrConversationNotFound      = errors.New("conversation not found")
	ErrInvalidConversationStatus = errors.New("invalid conversation status")
	ErrEmptyConversationSubject  = errors.New("conversation subject is required")
)

var (
	ConversationSortable   = []string{"created_at", "updated_at", "status", "subject"}
	ConversationFilterable = []string{"status", "user_id", "created_at"}
)

type CreateConversationInput struct {
	UserID  string
	Subject string
}

type UpdateConversationInput struct {
	Subject *string
	Status  *int
}

type IConversationUseCase interface {
	Create(ctx context.Context, orgID string, input CreateConversationInput) (entities.Conversation, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Conversation, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Conversation, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateConversationInput) (entities.Conversation, error)
	Delete(ctx context.Context, orgID, id string) error
}

type ConversationUseCase struct {
	conversations interfaces.IConversationRepository
	clients       interfaces.IClientRepository
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(conversations interfaces.IConversationRepository, clients interfaces.IClientRepository) *ConversationUseCase {
	return &ConversationUseCase{conversations: conversations, clients: clients}
}

func (u *ConversationUseCase) Create(ctx context.Context, orgID string, input CreateConversationInput) (entities.Conversation, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return entities.Conversation{}, ErrEmptyConversationSubject
	}

	client, err := u.clients.GetByID(ctx, orgID, input.UserID)
	if err != nil {
		return entities.Conversation{}, err
	}
	if client.ID == "" || client.DeletedAt != nil {
		return entities.Conversation{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	return u.conversations.Create(ctx, entities.Conversation{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		UserID:    input.UserID,
		Subject:   subject,
		Status:    entities.ConversationStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *ConversationUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Conversation, error) {
	c, err := u.conversations.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Conversation{}, err
	}
	if c.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}
	return c, nil
}

func (u *ConversationUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Conversation, int, error) {
	all, err := u.conversations.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	page, total := pkg.ApplyListQuery(all, q, conversationField)
	return page, total, nil
}

func conversationField(c entities.Conversation, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(c.Status)), true
	case "subject":
		return c.Subject, true
	case "user_id":
		return c.UserID, true
	case "created_at":
		return c.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return c.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *ConversationUseCase) Update(ctx context.Context, orgID, id string, input UpdateConversationInput) (entities.Conversation, error) {
	c, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Conversation{}, err
	}

	if input.Subject != nil {
		subject := strings.TrimSpace(*input.Subject)
		if subject == "" {
			return entities.Conversation{}, ErrEmptyConversationSubject
		}
		c.Subject = subject
	}
	if input.Status != nil {
		next := entities.ConversationStatus(*input.Status)
		if _, ok := entities.ConversationStatusMap[next]; !ok {
			return entities.Conversation{}, fmt.Errorf("%w: %d", ErrInvalidConversationStatus, *input.Status)
		}
		if next == entities.ConversationStatusClosed && c.Status != entities.ConversationStatusClosed {
			now := time.Now().UTC()
			c.ClosedAt = &now
		}
		if next != entities.ConversationStatusClosed {
			c.ClosedAt = nil
		}
		c.Status = next
	}

	updated, err := u.conversations.Update(ctx, c)
	if err != nil {
		return entities.Conversation{}, err
	}
	if updated.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}
	return updated, nil
}

func (u *ConversationUseCase) Delete(ctx context.Context, orgID, id string) error {
	deleted, err := u.conversations.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrConversationNotFound
	}
	return nil
}
