package request

import "service_engine_x/internal/usecase"

type ProposalItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ServiceID   *string `json:"service_id"`
}

type CreateProposalRequest struct {
	ContactEmail   string                `json:"contact_email" binding:"required,email"`
	ContactNameF   string                `json:"contact_name_f" binding:"required"`
	ContactNameL   string                `json:"contact_name_l"`
	ContactCompany *string               `json:"contact_company"`
	Notes          *string               `json:"notes"`
	Items          []ProposalItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateProposalRequest) ToInput() usecase.CreateProposalInput {
	items := make([]usecase.ProposalItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.ProposalItemInput{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			ServiceID:   it.ServiceID,
		})
	}
	return usecase.CreateProposalInput{
		ContactEmail:   r.ContactEmail,
		ContactNameF:   r.ContactNameF,
		ContactNameL:   r.ContactNameL,
		ContactCompany: r.ContactCompany,
		Notes:          r.Notes,
		Items:          items,
	}
}

// SignProposalRequest is the signature evidence submitted from the hosted
// signing page or the authenticated API.
type SignProposalRequest struct {
	SignerName   string `json:"signer_name" binding:"required"`
	SignerEmail  string `json:"signer_email" binding:"required,email"`
	SignatureRef string `json:"signature_ref"`
}

func (r SignProposalRequest) ToInput(ip, userAgent string) usecase.SignatureInput {
	return usecase.SignatureInput{
		SignerName:      r.SignerName,
		SignerEmail:     r.SignerEmail,
		SignerIP:        ip,
		SignerUserAgent: userAgent,
		SignatureRef:    r.SignatureRef,
	}
}

// DocumensoWebhookRequest is the payload relayed by the e-signature provider
// when a document completes.
type DocumensoWebhookRequest struct {
	Event   string `json:"event" binding:"required"`
	Payload struct {
		ID         int64  `json:"id"`
		ExternalID string `json:"externalId"`
		Recipients []struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"recipients"`
	} `json:"payload"`
}
