package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"math"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound       = errors.New("proposal not found")
	ErrProposalStatusConflict = errors.New("proposal status conflict")
	ErrProposalAlreadySigned  = errors.New("proposal already signed")
	ErrProposalNoItems        = errors.New("proposal requires at least one item")
	ErrInvalidContactEmail    = errors.New("invalid contact email")
	ErrInvalidItemPrice       = errors.New("invalid item price")
	ErrUnknownService         = errors.New("unknown service reference")
	ErrOrderNumberCollision   = errors.New("could not allocate a unique order number")
)

// Allow-lists for the proposal list query grammar.
var (
	ProposalSortable   = []string{"created_at", "updated_at", "total", "status", "contact_email"}
	ProposalFilterable = []string{"status", "contact_email", "total", "created_at"}
)

type ProposalItemInput struct {
	Name        string
	Description string
	Price       float64
	ServiceID   *string
}

type CreateProposalInput struct {
	ContactEmail   string
	ContactNameF   string
	ContactNameL   string
	ContactCompany *string
	Notes          *string
	Items          []ProposalItemInput
}

// SignatureInput is the evidence captured on the signing page or relayed by
// the e-signature webhook.
type SignatureInput struct {
	SignerName      string
	SignerEmail     string
	SignerIP        string
	SignerUserAgent string
	SignatureRef    string
	SignedVia       string
}

// ConversionResult is everything sign() creates.
type ConversionResult struct {
	Proposal      entities.Proposal
	Engagement    entities.Engagement
	Projects      []entities.Project
	Order         entities.Order
	CheckoutURL   string
	AlreadySigned bool
}

// IProposalUseCase exposes the proposal lifecycle: Draft -> Sent -> Signed,
// where signing converts the proposal into an engagement, projects and an
// order.

type IProposalUseCase interface {
	Create(ctx context.Context, orgID string, input CreateProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Proposal, error)
	GetPublic(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Proposal, int, error)
	Send(ctx context.Context, orgID, id string) (entities.Proposal, error)
	Sign(ctx context.Context, orgID, id string, sig SignatureInput) (ConversionResult, error)
	SignPublic(ctx context.Context, id string, sig SignatureInput) (ConversionResult, error)
	HandleSignatureEvent(ctx context.Context, documentID string, sig SignatureInput) (ConversionResult, error)
	Delete(ctx context.Context, orgID, id string) error
}

type ProposalUseCase struct {
	proposals   interfaces.IProposalRepository
	clients     interfaces.IClientRepository
	engagements interfaces.IEngagementRepository
	projects    interfaces.IProjectRepository
	orders      interfaces.IOrderRepository
	services    interfaces.IServiceRepository
	orgs        interfaces.IOrganizationRepository
	renderer    interfaces.IPDFRenderer
	storage     interfaces.IDocumentStorage
	signatures  interfaces.ISignatureGateway
	checkout    interfaces.ICheckoutGateway
	email       interfaces.IEmailSender

	// publicBaseURL fronts the client-facing signing and checkout-return pages.
	publicBaseURL string
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposals interfaces.IProposalRepository,
	clients interfaces.IClientRepository,
	engagements interfaces.IEngagementRepository,
	projects interfaces.IProjectRepository,
	orders interfaces.IOrderRepository,
	services interfaces.IServiceRepository,
	orgs interfaces.IOrganizationRepository,
	renderer interfaces.IPDFRenderer,
	storage interfaces.IDocumentStorage,
	signatures interfaces.ISignatureGateway,
	checkout interfaces.ICheckoutGateway,
	email interfaces.IEmailSender,
	publicBaseURL string,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposals:     proposals,
		clients:       clients,
		engagements:   engagements,
		projects:      projects,
		orders:        orders,
		services:      services,
		orgs:          orgs,
		renderer:      renderer,
		storage:       storage,
		signatures:    signatures,
		checkout:      checkout,
		email:         email,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, orgID string, input CreateProposalInput) (entities.Proposal, error) {
	email := strings.ToLower(strings.TrimSpace(input.ContactEmail))
	if email == "" || !strings.Contains(email, "@") {
		return entities.Proposal{}, ErrInvalidContactEmail
	}
	if len(input.Items) == 0 {
		return entities.Proposal{}, ErrProposalNoItems
	}

	// Service references must belong to the caller's org.
	var serviceIDs []string
	for _, it := range input.Items {
		if it.Price < 0 {
			return entities.Proposal{}, ErrInvalidItemPrice
		}
		if it.ServiceID != nil && *it.ServiceID != "" {
			serviceIDs = append(serviceIDs, *it.ServiceID)
		}
	}
	if len(serviceIDs) > 0 {
		found, err := u.services.ListByIDs(ctx, orgID, serviceIDs)
		if err != nil {
			return entities.Proposal{}, err
		}
		known := make(map[string]bool, len(found))
		for _, s := range found {
			if s.DeletedAt == nil {
				known[s.ID] = true
			}
		}
		for _, id := range serviceIDs {
			if !known[id] {
				return entities.Proposal{}, fmt.Errorf("%w: %s", ErrUnknownService, id)
			}
		}
	}

	now := time.Now().UTC()
	total := 0.0
	items := make([]entities.ProposalItem, 0, len(input.Items))
	for _, it := range input.Items {
		total += it.Price
		items = append(items, entities.ProposalItem{
			ID:          uuid.NewString(),
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			ServiceID:   it.ServiceID,
			CreatedAt:   now,
		})
	}

	p := entities.Proposal{
		ID:             uuid.NewString(),
		OrgID:          orgID,
		ContactEmail:   email,
		ContactNameF:   strings.TrimSpace(input.ContactNameF),
		ContactNameL:   strings.TrimSpace(input.ContactNameL),
		ContactCompany: input.ContactCompany,
		Status:         entities.ProposalStatusDraft,
		Total:          total,
		Notes:          input.Notes,
		Items:          items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.proposals.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[usecase][proposal] created id=%s org=%s items=%d total=%s", created.ID, orgID, len(items), pkg.FormatCurrency(total))
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Proposal, error) {
	p, err := u.proposals.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.DeletedAt != nil {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// GetPublic serves the client-facing signing page: only Sent or Signed
// proposals are visible, and the signing token is withheld once signed.
func (u *ProposalUseCase) GetPublic(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.proposals.GetByIDPublic(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" || p.DeletedAt != nil || p.Status < entities.ProposalStatusSent {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusSent {
		p.DocumensoSigningToken = ""
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Proposal, int, error) {
	all, err := u.proposals.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Proposal, 0, len(all))
	for _, p := range all {
		if p.DeletedAt == nil {
			live = append(live, p)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, proposalField)
	return page, total, nil
}

func proposalField(p entities.Proposal, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(p.Status)), true
	case "contact_email":
		return p.ContactEmail, true
	case "total":
		return fmt.Sprintf("%f", p.Total), true
	case "created_at":
		return p.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return p.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

// Send runs the straight-line pipeline: render PDF, upload, register for
// signature, then one conditional write. Every step before the write aborts
// with no persisted mutation; the write itself only lands if the proposal is
// still Draft.
func (u *ProposalUseCase) Send(ctx context.Context, orgID, id string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusDraft {
		return entities.Proposal{}, statusConflict(p.Status)
	}

	filename := fmt.Sprintf("proposal-%s.pdf", p.ID)
	pdf, err := u.renderer.RenderPDF(ctx, buildProposalHTML(p), filename)
	if err != nil {
		log.Printf("[usecase][proposal] send render failed id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}

	pdfURL, err := u.storage.UploadProposalPDF(ctx, p.OrgID, p.ID, pdf)
	if err != nil {
		log.Printf("[usecase][proposal] send upload failed id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}

	doc, err := u.signatures.CreateSigningRequest(ctx, interfaces.SigningRequest{
		PDF:            pdf,
		Filename:       filename,
		Title:          fmt.Sprintf("Proposal for %s", p.ContactName()),
		RecipientName:  p.ContactName(),
		RecipientEmail: p.ContactEmail,
	})
	if err != nil {
		log.Printf("[usecase][proposal] send signature registration failed id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}

	now := time.Now().UTC()
	p.Status = entities.ProposalStatusSent
	p.SentAt = &now
	p.PDFURL = &pdfURL
	p.DocumensoDocumentID = doc.DocumentID
	p.DocumensoSigningToken = doc.SigningToken

	updated, err := u.proposals.TransitionAndUpdate(ctx, p, entities.ProposalStatusDraft)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		// Lost a concurrent send race after the side effects ran. The S3
		// object was overwritten in place, so no cleanup is needed.
		return entities.Proposal{}, statusConflict(entities.ProposalStatusSent)
	}

	u.sendSigningEmail(ctx, updated)
	log.Printf("[usecase][proposal] sent id=%s document_id=%s", updated.ID, doc.DocumentID)
	return updated, nil
}

func (u *ProposalUseCase) sendSigningEmail(ctx context.Context, p entities.Proposal) {
	orgName := "Your service provider"
	if org, err := u.orgs.GetByID(ctx, p.OrgID); err == nil && org.Name != "" {
		orgName = org.Name
	}
	err := u.email.SendProposalEmail(ctx, interfaces.ProposalEmail{
		ToEmail:     p.ContactEmail,
		ContactName: p.ContactName(),
		OrgName:     orgName,
		SigningURL:  fmt.Sprintf("%s/proposals/%s", u.publicBaseURL, p.ID),
		Total:       pkg.FormatCurrency(p.Total),
	})
	if err != nil {
		log.Printf("[usecase][proposal] signing email failed id=%s err=%v", p.ID, err)
	}
}

func (u *ProposalUseCase) Sign(ctx context.Context, orgID, id string, sig SignatureInput) (ConversionResult, error) {
	p, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return ConversionResult{}, err
	}
	if sig.SignedVia == "" {
		sig.SignedVia = "api"
	}
	return u.convert(ctx, p, sig)
}

func (u *ProposalUseCase) SignPublic(ctx context.Context, id string, sig SignatureInput) (ConversionResult, error) {
	p, err := u.proposals.GetByIDPublic(ctx, id)
	if err != nil {
		return ConversionResult{}, err
	}
	if p.ID == "" || p.DeletedAt != nil || p.Status < entities.ProposalStatusSent {
		return ConversionResult{}, ErrProposalNotFound
	}
	if sig.SignedVia == "" {
		sig.SignedVia = "signing_page"
	}
	return u.convert(ctx, p, sig)
}

// HandleSignatureEvent is the e-signature webhook entry point. Repeat
// deliveries for an already-signed proposal acknowledge instead of re-running
// the cascade.
func (u *ProposalUseCase) HandleSignatureEvent(ctx context.Context, documentID string, sig SignatureInput) (ConversionResult, error) {
	p, err := u.proposals.GetByDocumentID(ctx, documentID)
	if err != nil {
		return ConversionResult{}, err
	}
	if p.ID == "" || p.DeletedAt != nil {
		return ConversionResult{}, ErrProposalNotFound
	}
	if p.Status == entities.ProposalStatusSigned {
		log.Printf("[usecase][proposal] webhook replay ignored id=%s document_id=%s", p.ID, documentID)
		return ConversionResult{Proposal: p, AlreadySigned: true}, nil
	}
	if sig.SignedVia == "" {
		sig.SignedVia = "documenso_webhook"
	}
	return u.convert(ctx, p, sig)
}

// convert is the single Sent -> Signed conversion routine shared by the sign
// endpoints and the signature webhook.
//
// The transition write happens FIRST and is conditional on status still being
// Sent; whichever caller wins the write runs the cascade, everyone else gets a
// conflict. This closes the double-cascade race at the cost of a Signed
// proposal briefly lacking its converted_* links (they land in a second write
// at the end).
func (u *ProposalUseCase) convert(ctx context.Context, p entities.Proposal, sig SignatureInput) (ConversionResult, error) {
	if p.Status == entities.ProposalStatusSigned {
		return ConversionResult{}, ErrProposalAlreadySigned
	}
	if p.Status != entities.ProposalStatusSent {
		return ConversionResult{}, statusConflict(p.Status)
	}

	now := time.Now().UTC()
	claim := p
	claim.Status = entities.ProposalStatusSigned
	claim.SignedAt = &now
	claim.Signature = entities.SignatureEvidence{
		SignerName:      sig.SignerName,
		SignerEmail:     sig.SignerEmail,
		SignerIP:        sig.SignerIP,
		SignerUserAgent: sig.SignerUserAgent,
		SignatureRef:    sig.SignatureRef,
	}

	claimed, err := u.proposals.TransitionAndUpdate(ctx, claim, entities.ProposalStatusSent)
	if err != nil {
		return ConversionResult{}, err
	}
	if claimed.ID == "" {
		return ConversionResult{}, ErrProposalAlreadySigned
	}

	client, err := u.findOrCreateClient(ctx, claimed)
	if err != nil {
		return ConversionResult{}, err
	}

	engagement, err := u.engagements.Create(ctx, entities.Engagement{
		ID:         uuid.NewString(),
		OrgID:      claimed.OrgID,
		ClientID:   client.ID,
		Name:       engagementName(claimed),
		Status:     entities.EngagementStatusActive,
		ProposalID: &claimed.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return ConversionResult{}, err
	}

	projects := make([]entities.Project, 0, len(claimed.Items))
	for _, item := range claimed.Items {
		var desc *string
		if item.Description != "" {
			d := item.Description
			desc = &d
		}
		project, err := u.projects.Create(ctx, entities.Project{
			ID:           uuid.NewString(),
			OrgID:        claimed.OrgID,
			EngagementID: engagement.ID,
			Name:         item.Name,
			Description:  desc,
			Status:       entities.ProjectStatusActive,
			Phase:        entities.ProjectPhaseKickoff,
			ServiceID:    item.ServiceID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			// A lost project does not block the order; the engagement keeps
			// the proposal link for manual repair.
			log.Printf("[usecase][proposal] project create failed proposal=%s item=%s err=%v", claimed.ID, item.ID, err)
			continue
		}
		projects = append(projects, project)
	}

	order, err := u.createOrder(ctx, claimed, client, engagement, sig.SignedVia)
	if err != nil {
		return ConversionResult{}, err
	}

	checkoutURL := u.createCheckout(ctx, claimed, order)

	final := claimed
	final.ConvertedOrderID = &order.ID
	final.ConvertedEngagementID = &engagement.ID
	updated, err := u.proposals.TransitionAndUpdate(ctx, final, entities.ProposalStatusSigned)
	if err != nil {
		return ConversionResult{}, err
	}
	if updated.ID != "" {
		final = updated
	}

	u.sendSignedEmail(ctx, final)
	log.Printf("[usecase][proposal] signed id=%s order=%s engagement=%s projects=%d via=%s",
		final.ID, order.ID, engagement.ID, len(projects), sig.SignedVia)

	return ConversionResult{
		Proposal:    final,
		Engagement:  engagement,
		Projects:    projects,
		Order:       order,
		CheckoutURL: checkoutURL,
	}, nil
}

func (u *ProposalUseCase) findOrCreateClient(ctx context.Context, p entities.Proposal) (entities.Client, error) {
	existing, err := u.clients.GetByEmail(ctx, p.OrgID, p.ContactEmail)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	now := time.Now().UTC()
	return u.clients.Create(ctx, entities.Client{
		ID:        uuid.NewString(),
		OrgID:     p.OrgID,
		Email:     p.ContactEmail,
		NameF:     p.ContactNameF,
		NameL:     p.ContactNameL,
		Company:   p.ContactCompany,
		Status:    entities.ClientStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *ProposalUseCase) createOrder(ctx context.Context, p entities.Proposal, client entities.Client, engagement entities.Engagement, signedVia string) (entities.Order, error) {
	metaItems := make([]entities.OrderMetadataItem, 0, len(p.Items))
	for _, item := range p.Items {
		var desc *string
		if item.Description != "" {
			d := item.Description
			desc = &d
		}
		metaItems = append(metaItems, entities.OrderMetadataItem{
			Name:        item.Name,
			Description: desc,
			Price:       pkg.FormatCurrency(item.Price),
			ServiceID:   item.ServiceID,
		})
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:           uuid.NewString(),
		OrgID:        p.OrgID,
		UserID:       client.ID,
		ServiceName:  engagementName(p),
		Price:        p.Total,
		Currency:     "usd",
		Quantity:     1,
		Status:       entities.OrderStatusUnpaid,
		EngagementID: &engagement.ID,
		Metadata: entities.OrderMetadata{
			ProposalID:    p.ID,
			EngagementID:  engagement.ID,
			SignedVia:     signedVia,
			ProposalItems: metaItems,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Order numbers are random; on the rare collision regenerate once.
	for attempt := 0; attempt < 2; attempt++ {
		order.Number = pkg.GenerateOrderNumber()
		created, err := u.orders.Create(ctx, order)
		if err != nil {
			return entities.Order{}, err
		}
		if created.ID != "" {
			return created, nil
		}
		log.Printf("[usecase][proposal] order number collision number=%s proposal=%s", order.Number, p.ID)
	}
	return entities.Order{}, ErrOrderNumberCollision
}

// createCheckout is best-effort: the signed outcome stands even when the
// hosted checkout page cannot be created.
func (u *ProposalUseCase) createCheckout(ctx context.Context, p entities.Proposal, order entities.Order) string {
	items := make([]interfaces.CheckoutItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, interfaces.CheckoutItem{
			Name:        item.Name,
			Description: item.Description,
			AmountCents: int64(math.Round(item.Price * 100)),
			Quantity:    1,
		})
	}

	session, err := u.checkout.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{
		Items:         items,
		CustomerEmail: p.ContactEmail,
		Metadata: map[string]string{
			"proposal_id": p.ID,
			"order_id":    order.ID,
			"org_id":      p.OrgID,
		},
		SuccessURL: fmt.Sprintf("%s/proposals/%s/paid", u.publicBaseURL, p.ID),
		CancelURL:  fmt.Sprintf("%s/proposals/%s", u.publicBaseURL, p.ID),
	})
	if err != nil {
		log.Printf("[usecase][proposal] checkout session failed proposal=%s order=%s err=%v", p.ID, order.ID, err)
		return ""
	}
	return session.CheckoutURL
}

func (u *ProposalUseCase) sendSignedEmail(ctx context.Context, p entities.Proposal) {
	org, err := u.orgs.GetByID(ctx, p.OrgID)
	if err != nil || org.Email == nil || *org.Email == "" {
		return
	}
	company := ""
	if p.ContactCompany != nil {
		company = *p.ContactCompany
	}
	pdfURL := ""
	if p.PDFURL != nil {
		pdfURL = *p.PDFURL
	}
	sendErr := u.email.SendProposalSignedEmail(ctx, interfaces.ProposalSignedEmail{
		ToEmails:     []string{*org.Email},
		SignerName:   p.Signature.SignerName,
		CompanyName:  company,
		Total:        pkg.FormatCurrency(p.Total),
		SignedPDFURL: pdfURL,
		ProposalID:   p.ID,
	})
	if sendErr != nil {
		log.Printf("[usecase][proposal] signed email failed id=%s err=%v", p.ID, sendErr)
	}
}

// Delete soft-deletes a proposal. Signed proposals are retained for audit.
func (u *ProposalUseCase) Delete(ctx context.Context, orgID, id string) error {
	p, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if p.Status == entities.ProposalStatusSigned {
		return statusConflict(p.Status)
	}

	deleted, err := u.proposals.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrProposalNotFound
	}
	return nil
}

func statusConflict(current entities.ProposalStatus) error {
	return fmt.Errorf("%w: proposal is %s", ErrProposalStatusConflict, entities.ProposalStatusLabel(current))
}

func engagementName(p entities.Proposal) string {
	if p.ContactCompany != nil && *p.ContactCompany != "" {
		return *p.ContactCompany
	}
	return p.ContactName()
}

// buildProposalHTML renders the PDF body. Kept deliberately plain; styling
// belongs to the PDF service's CSS engine.
func buildProposalHTML(p entities.Proposal) string {
	var b strings.Builder
	b.WriteString("<html><head><meta charset=\"utf-8\"><style>")
	b.WriteString("body{font-family:Helvetica,Arial,sans-serif;margin:48px;color:#1a1a1a}")
	b.WriteString("table{width:100%;border-collapse:collapse;margin-top:24px}")
	b.WriteString("th,td{text-align:left;padding:8px 4px;border-bottom:1px solid #ddd}")
	b.WriteString("tfoot td{font-weight:bold;border-bottom:none}")
	b.WriteString("</style></head><body>")

	fmt.Fprintf(&b, "<h1>Proposal</h1><p>Prepared for %s", html.EscapeString(p.ContactName()))
	if p.ContactCompany != nil && *p.ContactCompany != "" {
		fmt.Fprintf(&b, " (%s)", html.EscapeString(*p.ContactCompany))
	}
	b.WriteString("</p>")

	b.WriteString("<table><thead><tr><th>Item</th><th>Description</th><th>Price</th></tr></thead><tbody>")
	for _, item := range p.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>$%s</td></tr>",
			html.EscapeString(item.Name),
			html.EscapeString(item.Description),
			pkg.FormatCurrency(item.Price))
	}
	fmt.Fprintf(&b, "</tbody><tfoot><tr><td colspan=\"2\">Total</td><td>$%s</td></tr></tfoot></table>",
		pkg.FormatCurrency(p.Total))

	if p.Notes != nil && *p.Notes != "" {
		fmt.Fprintf(&b, "<h2>Notes</h2><p>%s</p>", html.EscapeString(*p.Notes))
	}

	b.WriteString("</body></html>")
	return b.String()
}
