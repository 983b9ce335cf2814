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
	ErrAccountNotFound    = errors.New("account not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidAccountData = errors.New("invalid account data")
	ErrInvalidContactData = errors.New("invalid contact data")
)

var (
	AccountSortable   = []string{"created_at", "updated_at", "name"}
	AccountFilterable = []string{"name", "industry", "created_at"}

	ContactSortable   = []string{"created_at", "updated_at", "email", "name_f"}
	ContactFilterable = []string{"email", "account_id", "created_at"}
)

type CreateAccountInput struct {
	Name     string
	Website  *string
	Industry *string
	Notes    *string
}

type UpdateAccountInput struct {
	Name     *string
	Website  *string
	Industry *string
	Notes    *string
}

type CreateContactInput struct {
	AccountID *string
	Email     string
	NameF     string
	NameL     string
	Phone     *string
	Title     *string
}

type UpdateContactInput struct {
	AccountID *string
	Email     *string
	NameF     *string
	NameL     *string
	Phone     *string
	Title     *string
}

// ICRMUseCase covers accounts and the contacts attached to them. A contact's
// account_id, when set, must resolve within the same organization.

type ICRMUseCase interface {
	CreateAccount(ctx context.Context, orgID string, input CreateAccountInput) (entities.Account, error)
	GetAccount(ctx context.Context, orgID, id string) (entities.Account, error)
	ListAccounts(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Account, int, error)
	UpdateAccount(ctx context.Context, orgID, id string, input UpdateAccountInput) (entities.Account, error)
	DeleteAccount(ctx context.Context, orgID, id string) error

	CreateContact(ctx context.Context, orgID string, input CreateContactInput) (entities.Contact, error)
	GetContact(ctx context.Context, orgID, id string) (entities.Contact, error)
	ListContacts(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Contact, int, error)
	UpdateContact(ctx context.Context, orgID, id string, input UpdateContactInput) (entities.Contact, error)
	DeleteContact(ctx context.Context, orgID, id string) error
}

type CRMUseCase struct {
	accounts interfaces.IAccountRepository
	contacts interfaces.IContactRepository
}

var _ ICRMUseCase = (*CRMUseCase)(nil)

func NewCRMUseCase(accounts interfaces.IAccountRepository, contacts interfaces.IContactRepository) *CRMUseCase {
	return &CRMUseCase{accounts: accounts, contacts: contacts}
}

func (u *CRMUseCase) CreateAccount(ctx context.Context, orgID string, input CreateAccountInput) (entities.Account, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Account{}, fmt.Errorf("%w: name", ErrInvalidAccountData)
	}

	now := time.Now().UTC()
	return u.accounts.Create(ctx, entities.Account{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Name:      name,
		Website:   input.Website,
		Industry:  input.Industry,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *CRMUseCase) GetAccount(ctx context.Context, orgID, id string) (entities.Account, error) {
	a, err := u.accounts.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Account{}, err
	}
	if a.ID == "" || a.DeletedAt != nil {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (u *CRMUseCase) ListAccounts(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Account, int, error) {
	all, err := u.accounts.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Account, 0, len(all))
	for _, a := range all {
		if a.DeletedAt == nil {
			live = append(live, a)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, accountField)
	return page, total, nil
}

func accountField(a entities.Account, field string) (string, bool) {
	switch field {
	case "name":
		return a.Name, true
	case "industry":
		if a.Industry == nil {
			return "", true
		}
		return *a.Industry, true
	case "created_at":
		return a.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return a.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *CRMUseCase) UpdateAccount(ctx context.Context, orgID, id string, input UpdateAccountInput) (entities.Account, error) {
	a, err := u.GetAccount(ctx, orgID, id)
	if err != nil {
		return entities.Account{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Account{}, fmt.Errorf("%w: name", ErrInvalidAccountData)
		}
		a.Name = name
	}
	if input.Website != nil {
		a.Website = input.Website
	}
	if input.Industry != nil {
		a.Industry = input.Industry
	}
	if input.Notes != nil {
		a.Notes = input.Notes
	}

	updated, err := u.accounts.Update(ctx, a)
	if err != nil {
		return entities.Account{}, err
	}
	if updated.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return updated, nil
}

func (u *CRMUseCase) DeleteAccount(ctx context.Context, orgID, id string) error {
	if _, err := u.GetAccount(ctx, orgID, id); err != nil {
		return err
	}
	deleted, err := u.accounts.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrAccountNotFound
	}
	return nil
}

func (u *CRMUseCase) CreateContact(ctx context.Context, orgID string, input CreateContactInput) (entities.Contact, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.Contact{}, fmt.Errorf("%w: email", ErrInvalidContactData)
	}
	if input.AccountID != nil {
		if _, err := u.GetAccount(ctx, orgID, *input.AccountID); err != nil {
			return entities.Contact{}, err
		}
	}

	now := time.Now().UTC()
	return u.contacts.Create(ctx, entities.Contact{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		AccountID: input.AccountID,
		Email:     email,
		NameF:     strings.TrimSpace(input.NameF),
		NameL:     strings.TrimSpace(input.NameL),
		Phone:     input.Phone,
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *CRMUseCase) GetContact(ctx context.Context, orgID, id string) (entities.Contact, error) {
	c, err := u.contacts.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Contact{}, err
	}
	if c.ID == "" || c.DeletedAt != nil {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func (u *CRMUseCase) ListContacts(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Contact, int, error) {
	all, err := u.contacts.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Contact, 0, len(all))
	for _, c := range all {
		if c.DeletedAt == nil {
			live = append(live, c)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, contactField)
	return page, total, nil
}

func contactField(c entities.Contact, field string) (string, bool) {
	switch field {
	case "email":
		return c.Email, true
	case "name_f":
		return c.NameF, true
	case "account_id":
		if c.AccountID == nil {
			return "", true
		}
		return *c.AccountID, true
	case "created_at":
		return c.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return c.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *CRMUseCase) UpdateContact(ctx context.Context, orgID, id string, input UpdateContactInput) (entities.Contact, error) {
	c, err := u.GetContact(ctx, orgID, id)
	if err != nil {
		return entities.Contact{}, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" || !strings.Contains(email, "@") {
			return entities.Contact{}, fmt.Errorf("%w: email", ErrInvalidContactData)
		}
		c.Email = email
	}
	if input.AccountID != nil {
		if *input.AccountID != "" {
			if _, err := u.GetAccount(ctx, orgID, *input.AccountID); err != nil {
				return entities.Contact{}, err
			}
			c.AccountID = input.AccountID
		} else {
			c.AccountID = nil
		}
	}
	if input.NameF != nil {
		c.NameF = strings.TrimSpace(*input.NameF)
	}
	if input.NameL != nil {
		c.NameL = strings.TrimSpace(*input.NameL)
	}
	if input.Phone != nil {
		c.Phone = input.Phone
	}
	if input.Title != nil {
		c.Title = input.Title
	}

	updated, err := u.contacts.Update(ctx, c)
	if err != nil {
		return entities.Contact{}, err
	}
	if updated.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return updated, nil
}

func (u *CRMUseCase) DeleteContact(ctx context.Context, orgID, id string) error {
	if _, err := u.GetContact(ctx, orgID, id); err != nil {
		return err
	}
	deleted, err := u.contacts.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrContactNotFound
	}
	return nil
}
