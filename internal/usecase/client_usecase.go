package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientEmailTaken  = errors.New("client email already in use")
	ErrInvalidClientData = errors.New("invalid client data")
)

var (
	ClientSortable   = []string{"created_at", "updated_at", "email", "name_f", "status"}
	ClientFilterable = []string{"status", "email", "created_at"}
)

type CreateClientInput struct {
	Email    string
	NameF    string
	NameL    string
	Company  *string
	Phone    *string
	Password *string
}

type UpdateClientInput struct {
	NameF   *string
	NameL   *string
	Company *string
	Phone   *string
	Status  *int
}

// IClientUseCase exposes client (end-customer) operations.

type IClientUseCase interface {
	Create(ctx context.Context, orgID string, input CreateClientInput) (entities.Client, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Client, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Client, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateClientInput) (entities.Client, error)
	Delete(ctx context.Context, orgID, id string) error
}

type ClientUseCase struct {
	clients interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func (u *ClientUseCase) Create(ctx context.Context, orgID string, input CreateClientInput) (entities.Client, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.Client{}, fmt.Errorf("%w: email", ErrInvalidClientData)
	}

	existing, err := u.clients.GetByEmail(ctx, orgID, email)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != "" {
		return entities.Client{}, ErrClientEmailTaken
	}

	passwordHash := ""
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Client{}, err
		}
		passwordHash = string(hash)
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		Email:        email,
		NameF:        strings.TrimSpace(input.NameF),
		NameL:        strings.TrimSpace(input.NameL),
		Company:      input.Company,
		Phone:        input.Phone,
		Status:       entities.ClientStatusActive,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	log.Printf("[usecase][client] created id=%s org=%s", created.ID, orgID)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Client, error) {
	c, err := u.clients.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" || c.DeletedAt != nil {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Client, int, error) {
	all, err := u.clients.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Client, 0, len(all))
	for _, c := range all {
		if c.DeletedAt == nil {
			live = append(live, c)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, clientField)
	return page, total, nil
}

func clientField(c entities.Client, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(c.Status)), true
	case "email":
		return c.Email, true
	case "name_f":
		return c.NameF, true
	case "created_at":
		return c.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return c.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *ClientUseCase) Update(ctx context.Context, orgID, id string, input UpdateClientInput) (entities.Client, error) {
	c, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Client{}, err
	}

	if input.NameF != nil {
		c.NameF = strings.TrimSpace(*input.NameF)
	}
	if input.NameL != nil {
		c.NameL = strings.TrimSpace(*input.NameL)
	}
	if input.Company != nil {
		c.Company = input.Company
	}
	if input.Phone != nil {
		c.Phone = input.Phone
	}
	if input.Status != nil {
		s := entities.ClientStatus(*input.Status)
		if s != entities.ClientStatusActive && s != entities.ClientStatusInactive {
			return entities.Client{}, fmt.Errorf("%w: status %d", ErrInvalidClientData, *input.Status)
		}
		c.Status = s
	}

	updated, err := u.clients.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, orgID, id string) error {
	if _, err := u.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	deleted, err := u.clients.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrClientNotFound
	}
	return nil
}
