package request

import "service_engine_x/internal/usecase"

type CreateOrganizationRequest struct {
	Name   string  `json:"name" binding:"required"`
	Slug   string  `json:"slug"`
	Domain *string `json:"domain"`
	Email  *string `json:"email"`
}

func (r CreateOrganizationRequest) ToInput() usecase.CreateOrganizationInput {
	return usecase.CreateOrganizationInput{
		Name:   r.Name,
		Slug:   r.Slug,
		Domain: r.Domain,
		Email:  r.Email,
	}
}

// AdminCreateProposalRequest lets an operator create a proposal for any
// tenant, optionally sending it in the same call.
type AdminCreateProposalRequest struct {
	OrgID    string                `json:"org_id" binding:"required"`
	Proposal CreateProposalRequest `json:"proposal" binding:"required"`
	Send     bool                  `json:"send"`
}

func (r AdminCreateProposalRequest) ToInput() usecase.AdminCreateProposalInput {
	return usecase.AdminCreateProposalInput{
		OrgID:    r.OrgID,
		Proposal: r.Proposal.ToInput(),
		Send:     r.Send,
	}
}
