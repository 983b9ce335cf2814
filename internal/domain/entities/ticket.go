package entities

import "time"

type TicketStatus int

const (
	TicketStatusOpen    TicketStatus = 1
	TicketStatusPending TicketStatus = 2
	TicketStatusClosed  TicketStatus = 3
)

var TicketStatusMap = map[TicketStatus]string{
	TicketStatusOpen:    "Open",
	TicketStatusPending: "Pending",
	TicketStatusClosed:  "Closed",
}

func TicketStatusLabel(s TicketStatus) string {
	if label, ok := TicketStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// Ticket is a support request. Closing sets ClosedAt; any other status clears
// it.
type Ticket struct {
	ID        string       `json:"id"`
	OrgID     string       `json:"org_id"`
	UserID    string       `json:"user_id"`
	Subject   string       `json:"subject"`
	Body      *string      `json:"body,omitempty"`
	Status    TicketStatus `json:"status"`
	ClosedAt  *time.Time   `json:"closed_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
