package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
)

type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Website   *string   `json:"website,omitempty"`
	Industry  *string   `json:"industry,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Website:   a.Website,
		Industry:  a.Industry,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromAccounts(list []entities.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAccount(a))
	}
	return out
}

type ContactResponse struct {
	ID        string    `json:"id"`
	AccountID *string   `json:"account_id,omitempty"`
	Email     string    `json:"email"`
	NameF     string    `json:"name_f"`
	NameL     string    `json:"name_l"`
	Phone     *string   `json:"phone,omitempty"`
	Title     *string   `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Email:     c.Email,
		NameF:     c.NameF,
		NameL:     c.NameL,
		Phone:     c.Phone,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromContacts(list []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContact(c))
	}
	return out
}
