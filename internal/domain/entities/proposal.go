package entities

import "time"

// ProposalStatus is the proposal lifecycle: Draft -> Sent -> Signed, with
// Rejected as an externally-set terminal state. Status ids are wire-visible.
type ProposalStatus int

const (
	ProposalStatusDraft    ProposalStatus = 0
	ProposalStatusSent     ProposalStatus = 1
	ProposalStatusSigned   ProposalStatus = 2
	ProposalStatusRejected ProposalStatus = 3
)

var ProposalStatusMap = map[ProposalStatus]string{
	ProposalStatusDraft:    "Draft",
	ProposalStatusSent:     "Sent",
	ProposalStatusSigned:   "Signed",
	ProposalStatusRejected: "Rejected",
}

// ProposalStatusLabel returns the human-readable name, "Unknown" for
// out-of-range ids.
func ProposalStatusLabel(s ProposalStatus) string {
	if label, ok := ProposalStatusMap[s]; ok {
		return label
	}
	return "Unknown"
}

// ProposalItem is one priced unit of work belonging to a proposal. Items are
// strictly owned: they live embedded on the proposal record and are immutable
// once the proposal is Signed.
type ProposalItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ServiceID   *string   `json:"service_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignatureEvidence captures who signed and from where.
type SignatureEvidence struct {
	SignerName      string `json:"signer_name,omitempty"`
	SignerEmail     string `json:"signer_email,omitempty"`
	SignerIP        string `json:"signer_ip,omitempty"`
	SignerUserAgent string `json:"signer_user_agent,omitempty"`
	SignatureRef    string `json:"signature_ref,omitempty"`
}

// Proposal is a priced offer sent to a prospect, convertible into an
// engagement, projects, and an order upon signature.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (org_id-index): org_id
//   - GSI2 (documenso_document_id-index): documenso_document_id
//
// Total always equals the sum of item prices at last recompute.
type Proposal struct {
	ID                    string            `json:"id"`
	OrgID                 string            `json:"org_id"`
	ContactEmail          string            `json:"contact_email"`
	ContactNameF          string            `json:"contact_name_f"`
	ContactNameL          string            `json:"contact_name_l"`
	ContactCompany        *string           `json:"contact_company,omitempty"`
	Status                ProposalStatus    `json:"status"`
	Total                 float64           `json:"total"`
	Notes                 *string           `json:"notes,omitempty"`
	Items                 []ProposalItem    `json:"items"`
	PDFURL                *string           `json:"pdf_url,omitempty"`
	DocumensoDocumentID   string            `json:"documenso_document_id,omitempty"`
	DocumensoSigningToken string            `json:"documenso_signing_token,omitempty"`
	Signature             SignatureEvidence `json:"signature,omitempty"`
	ConvertedOrderID      *string           `json:"converted_order_id,omitempty"`
	ConvertedEngagementID *string           `json:"converted_engagement_id,omitempty"`
	SentAt                *time.Time        `json:"sent_at,omitempty"`
	SignedAt              *time.Time        `json:"signed_at,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	DeletedAt             *time.Time        `json:"deleted_at,omitempty"`
}

// ContactName joins first and last names for display.
func (p Proposal) ContactName() string {
	if p.ContactNameF == "" {
		return p.ContactNameL
	}
	if p.ContactNameL == "" {
		return p.ContactNameF
	}
	return p.ContactNameF + " " + p.ContactNameL
}
