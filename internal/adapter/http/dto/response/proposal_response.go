package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase"
	"service_engine_x/pkg"
)

type ProposalItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	ServiceID   *string `json:"service_id,omitempty"`
}

type SignatureResponse struct {
	SignerName   string `json:"signer_name,omitempty"`
	SignerEmail  string `json:"signer_email,omitempty"`
	SignatureRef string `json:"signature_ref,omitempty"`
}

type ProposalResponse struct {
	ID                    string                 `json:"id"`
	ContactEmail          string                 `json:"contact_email"`
	ContactNameF          string                 `json:"contact_name_f"`
	ContactNameL          string                 `json:"contact_name_l"`
	ContactCompany        *string                `json:"contact_company,omitempty"`
	Status                int                    `json:"status"`
	StatusLabel           string                 `json:"status_label"`
	Total                 string                 `json:"total"`
	Notes                 *string                `json:"notes,omitempty"`
	Items                 []ProposalItemResponse `json:"items"`
	PDFURL                *string                `json:"pdf_url,omitempty"`
	SigningToken          string                 `json:"signing_token,omitempty"`
	Signature             *SignatureResponse     `json:"signature,omitempty"`
	ConvertedOrderID      *string                `json:"converted_order_id,omitempty"`
	ConvertedEngagementID *string                `json:"converted_engagement_id,omitempty"`
	SentAt                *time.Time             `json:"sent_at,omitempty"`
	SignedAt              *time.Time             `json:"signed_at,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := make([]ProposalItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, ProposalItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       pkg.FormatCurrency(it.Price),
			ServiceID:   it.ServiceID,
		})
	}

	var sig *SignatureResponse
	if p.Signature.SignerEmail != "" || p.Signature.SignerName != "" {
		sig = &SignatureResponse{
			SignerName:   p.Signature.SignerName,
			SignerEmail:  p.Signature.SignerEmail,
			SignatureRef: p.Signature.SignatureRef,
		}
	}

	return ProposalResponse{
		ID:                    p.ID,
		ContactEmail:          p.ContactEmail,
		ContactNameF:          p.ContactNameF,
		ContactNameL:          p.ContactNameL,
		ContactCompany:        p.ContactCompany,
		Status:                int(p.Status),
		StatusLabel:           entities.ProposalStatusLabel(p.Status),
		Total:                 pkg.FormatCurrency(p.Total),
		Notes:                 p.Notes,
		Items:                 items,
		PDFURL:                p.PDFURL,
		SigningToken:          p.DocumensoSigningToken,
		Signature:             sig,
		ConvertedOrderID:      p.ConvertedOrderID,
		ConvertedEngagementID: p.ConvertedEngagementID,
		SentAt:                p.SentAt,
		SignedAt:              p.SignedAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func FromProposals(list []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProposal(p))
	}
	return out
}

// ConversionResponse is returned when a signature converts a proposal.
type ConversionResponse struct {
	Proposal      ProposalResponse    `json:"proposal"`
	Engagement    *EngagementResponse `json:"engagement,omitempty"`
	Projects      []ProjectResponse   `json:"projects,omitempty"`
	Order         *OrderResponse      `json:"order,omitempty"`
	CheckoutURL   string              `json:"checkout_url,omitempty"`
	AlreadySigned bool                `json:"already_signed"`
}

func FromConversion(r usecase.ConversionResult) ConversionResponse {
	out := ConversionResponse{
		Proposal:      FromProposal(r.Proposal),
		CheckoutURL:   r.CheckoutURL,
		AlreadySigned: r.AlreadySigned,
	}
	if r.Engagement.ID != "" {
		e := FromEngagement(r.Engagement)
		out.Engagement = &e
	}
	if len(r.Projects) > 0 {
		out.Projects = FromProjects(r.Projects)
	}
	if r.Order.ID != "" {
		o := FromOrder(r.Order)
		out.Order = &o
	}
	return out
}
