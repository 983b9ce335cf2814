package entities

import "time"

type EngagementStatus int

const (
	EngagementStatusActive EngagementStatus = 1
	EngagementStatusPaused EngagementStatus = 2
	EngagementStatusClosed EngagementStatus = 3
)

var EngagementStatusMap = map[EngagementStatus]string{
	EngagementStatusActive: "Active",
	EngagementStatusPaused: "Paused",
	EngagementStatusClosed: "Closed",
}

func EngagementStatusLabel(s EngagementStatus) string {
	if label, ok := EngagementStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// Engagement is the umbrella work relationship with a client, containing one
// or more projects. Closing sets ClosedAt; reopening clears it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
type Engagement struct {
	ID         string           `json:"id"`
	OrgID      string           `json:"org_id"`
	ClientID   string           `json:"client_id"`
	Name       string           `json:"name"`
	Status     EngagementStatus `json:"status"`
	ProposalID *string          `json:"proposal_id,omitempty"`
	ClosedAt   *time.Time       `json:"closed_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
