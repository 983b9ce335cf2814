package interfaces

import "context"

// External collaborators for the proposal lifecycle. Each call should carry a
// bounded timeout via ctx; none of them retry.

// IPDFRenderer converts an HTML document into PDF bytes.
type IPDFRenderer interface {
	RenderPDF(ctx context.Context, html, filename string) ([]byte, error)
}

// IDocumentStorage persists rendered documents and returns a retrievable URL.
// Re-uploading the same proposal overwrites rather than duplicates.
type IDocumentStorage interface {
	UploadProposalPDF(ctx context.Context, orgID, proposalID string, pdf []byte) (string, error)
}

// SigningRequest registers a document with the e-signature provider.
type SigningRequest struct {
	PDF            []byte
	Filename       string
	Title          string
	RecipientName  string
	RecipientEmail string
}

// SigningDocument identifies the registered document and the per-signer
// capture token.
type SigningDocument struct {
	DocumentID   string
	SigningToken string
}

// ISignatureGateway abstracts the e-signature provider (Documenso).
type ISignatureGateway interface {
	CreateSigningRequest(ctx context.Context, req SigningRequest) (SigningDocument, error)
}

// CheckoutItem is one line in the provider's price-cents format.
type CheckoutItem struct {
	Name        string
	Description string
	AmountCents int64
	Quantity    int
}

// CheckoutRequest seeds a hosted checkout session.
type CheckoutRequest struct {
	Items         []CheckoutItem
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider's session handle plus the hosted page URL.
type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// ICheckoutGateway abstracts the payment-checkout provider.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

// ProposalEmail is the signing-link email sent to the contact on send().
type ProposalEmail struct {
	ToEmail     string
	ContactName string
	OrgName     string
	SigningURL  string
	Total       string
}

// ProposalSignedEmail notifies the organization after a signature.
type ProposalSignedEmail struct {
	ToEmails     []string
	SignerName   string
	CompanyName  string
	Total        string
	SignedPDFURL string
	ProposalID   string
}

// IEmailSender abstracts outbound transactional email. Both sends are
// best-effort; failures must never block the proposal workflow.
type IEmailSender interface {
	SendProposalEmail(ctx context.Context, email ProposalEmail) error
	SendProposalSignedEmail(ctx context.Context, email ProposalSignedEmail) error
}
