package entities

import "time"

type ClientStatus int

const (
	ClientStatusInactive ClientStatus = 0
	ClientStatusActive   ClientStatus = 1
)

// Client is a user record scoped to one organization. Clients created by the
// proposal conversion workflow have no password and cannot log in until
// invited.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
type Client struct {
	ID           string       `json:"id"`
	OrgID        string       `json:"org_id"`
	Email        string       `json:"email"`
	NameF        string       `json:"name_f"`
	NameL        string       `json:"name_l"`
	Company      *string      `json:"company,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Status       ClientStatus `json:"status"`
	Balance      float64      `json:"balance"`
	Spent        float64      `json:"spent"`
	PasswordHash string       `json:"-"`
	RoleID       string       `json:"role_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
}

// FullName joins first and last names for display.
func (c Client) FullName() string {
	if c.NameF == "" {
		return c.NameL
	}
	if c.NameL == "" {
		return c.NameF
	}
	return c.NameF + " " + c.NameL
}
