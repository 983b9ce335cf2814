package entities

import "time"

// Account is a company/organization a tenant does business with. Contacts
// hang off accounts.
type Account struct {
	ID        string     `json:"id"`
	OrgID     string     `json:"org_id"`
	Name      string     `json:"name"`
	Website   *string    `json:"website,omitempty"`
	Industry  *string    `json:"industry,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Contact is a person at an account.
type Contact struct {
	ID        string     `json:"id"`
	OrgID     string     `json:"org_id"`
	AccountID *string    `json:"account_id,omitempty"`
	Email     string     `json:"email"`
	NameF     string     `json:"name_f"`
	NameL     string     `json:"name_l"`
	Phone     *string    `json:"phone,omitempty"`
	Title     *string    `json:"title,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
