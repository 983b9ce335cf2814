package entities

import "time"

type ConversationStatus int

const (
	ConversationStatusOpen   ConversationStatus = 1
	ConversationStatusClosed ConversationStatus = 2
)

var ConversationStatusMap = map[ConversationStatus]string{
	ConversationStatusOpen:   "Open",
	ConversationStatusClosed: "Closed",
}

func ConversationStatusLabel(s ConversationStatus) string {
	if label, ok := ConversationStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// Conversation is a message thread with a client. Closing sets ClosedAt;
// reopening clears it.
type Conversation struct {
	ID        string             `json:"id"`
	OrgID     string             `json:"org_id"`
	UserID    string             `json:"user_id"`
	Subject   string             `json:"subject"`
	Status    ConversationStatus `json:"status"`
	ClosedAt  *time.Time         `json:"closed_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
