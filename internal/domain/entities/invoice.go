package entities

import "time"

// InvoiceStatus ids follow the upstream numbering; 2 and 6 are unused.
type InvoiceStatus int

const (
	InvoiceStatusDraft         InvoiceStatus = 0
	InvoiceStatusUnpaid        InvoiceStatus = 1
	InvoiceStatusPaid          InvoiceStatus = 3
	InvoiceStatusRefunded      InvoiceStatus = 4
	InvoiceStatusCancelled     InvoiceStatus = 5
	InvoiceStatusPartiallyPaid InvoiceStatus = 7
)

var InvoiceStatusMap = map[InvoiceStatus]string{
	InvoiceStatusDraft:         "Draft",
	InvoiceStatusUnpaid:        "Unpaid",
	InvoiceStatusPaid:          "Paid",
	InvoiceStatusRefunded:      "Refunded",
	InvoiceStatusCancelled:     "Cancelled",
	InvoiceStatusPartiallyPaid: "Partially Paid",
}

// InvoiceStatusTransitions is the legal next-state table. Refunded is
// terminal. Paid can only be refunded, never reopened.
var InvoiceStatusTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:         {InvoiceStatusUnpaid, InvoiceStatusCancelled},
	InvoiceStatusUnpaid:        {InvoiceStatusDraft, InvoiceStatusCancelled},
	InvoiceStatusPaid:          {InvoiceStatusRefunded},
	InvoiceStatusRefunded:      {},
	InvoiceStatusCancelled:     {InvoiceStatusDraft, InvoiceStatusUnpaid},
	InvoiceStatusPartiallyPaid: {InvoiceStatusPaid, InvoiceStatusRefunded, InvoiceStatusCancelled},
}

func InvoiceStatusLabel(s InvoiceStatus) string {
	if label, ok := InvoiceStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// ValidInvoiceStatus reports whether s is one of the assigned status ids.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	_, ok := InvoiceStatusMap[s]
	return ok
}

// CanTransitionInvoiceStatus is the pure transition check for invoices.
func CanTransitionInvoiceStatus(current, next InvoiceStatus) bool {
	return CanTransition(InvoiceStatusTransitions, current, next)
}

// InvoiceItem is one priced line on an invoice, embedded on the invoice
// record.
type InvoiceItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	Discount    float64   `json:"discount"`
	Total       float64   `json:"total"`
	ServiceID   *string   `json:"service_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Invoice is an independently-created financial document with its own status
// model and transition table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
type Invoice struct {
	ID        string        `json:"id"`
	OrgID     string        `json:"org_id"`
	Number    string        `json:"number"`
	UserID    string        `json:"user_id"`
	Status    InvoiceStatus `json:"status"`
	Items     []InvoiceItem `json:"items"`
	Tax       *float64      `json:"tax,omitempty"`
	TaxType   *int          `json:"tax_type,omitempty"` // 1=fixed, 2=percentage
	Total     float64       `json:"total"`
	Note      *string       `json:"note,omitempty"`
	DateDue   *time.Time    `json:"date_due,omitempty"`
	DatePaid  *time.Time    `json:"date_paid,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`
}
