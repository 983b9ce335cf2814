package entities

import "time"

// Service is a catalog entry an organization offers. Proposal and invoice
// items may reference one as a template.
type Service struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Recurring   int        `json:"recurring"` // 0=one-off, 1=monthly, 2=yearly
	Price       *float64   `json:"price,omitempty"`
	Currency    string     `json:"currency"`
	Public      bool       `json:"public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
