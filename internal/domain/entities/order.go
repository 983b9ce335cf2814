package entities

import "time"

type OrderStatus int

const (
	OrderStatusUnpaid     OrderStatus = 0
	OrderStatusInProgress OrderStatus = 1
	OrderStatusCompleted  OrderStatus = 2
	OrderStatusCancelled  OrderStatus = 3
	OrderStatusOnHold     OrderStatus = 4
)

var OrderStatusMap = map[OrderStatus]string{
	OrderStatusUnpaid:     "Unpaid",
	OrderStatusInProgress: "In Progress",
	OrderStatusCompleted:  "Completed",
	OrderStatusCancelled:  "Cancelled",
	OrderStatusOnHold:     "On Hold",
}

func OrderStatusLabel(s OrderStatus) string {
	if label, ok := OrderStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// OrderMetadataItem snapshots one proposal line item at signing time, for
// audit independent of the mutable project rows.
type OrderMetadataItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price"`
	ServiceID   *string `json:"service_id,omitempty"`
}

// OrderMetadata records where an order came from.
type OrderMetadata struct {
	ProposalID    string              `json:"proposal_id,omitempty"`
	EngagementID  string              `json:"engagement_id,omitempty"`
	SignedVia     string              `json:"signed_via,omitempty"`
	ProposalItems []OrderMetadataItem `json:"proposal_items,omitempty"`
}

// Order is the financial transaction record for a priced purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
type Order struct {
	ID           string        `json:"id"`
	OrgID        string        `json:"org_id"`
	Number       string        `json:"number"`
	UserID       string        `json:"user_id"`
	ServiceID    *string       `json:"service_id,omitempty"`
	ServiceName  string        `json:"service_name"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Quantity     int           `json:"quantity"`
	Status       OrderStatus   `json:"status"`
	EngagementID *string       `json:"engagement_id,omitempty"`
	Note         string        `json:"note,omitempty"`
	Metadata     OrderMetadata `json:"metadata"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// OrderTask is a work item on an order.
type OrderTask struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	OrgID       string     `json:"org_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	SortOrder   int        `json:"sort_order"`
	IsPublic    bool       `json:"is_public"`
	ForClient   bool       `json:"for_client"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderMessage is one message on an order's thread.
type OrderMessage struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
