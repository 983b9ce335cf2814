package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrgNotFound    = errors.New("organization not found")
	ErrInvalidOrgData = errors.New("invalid organization data")
)

type CreateOrganizationInput struct {
	Name   string
	Slug   string
	Domain *string
	Email  *string
}

type AdminCreateProposalInput struct {
	OrgID    string
	Proposal CreateProposalInput
	Send     bool
}

// IAdminUseCase is the operator surface behind the internal key. It is the
// only place organizations get created, and it can act on any tenant.

type IAdminUseCase interface {
	CreateOrganization(ctx context.Context, input CreateOrganizationInput) (entities.Organization, error)
	GetOrganization(ctx context.Context, id string) (entities.Organization, error)
	ListOrganizations(ctx context.Context) ([]entities.Organization, error)
	CreateService(ctx context.Context, orgID string, input CreateServiceInput) (entities.Service, error)
	CreateProposal(ctx context.Context, input AdminCreateProposalInput) (entities.Proposal, error)
}

type AdminUseCase struct {
	orgs      interfaces.IOrganizationRepository
	services  IServiceUseCase
	proposals IProposalUseCase
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(orgs interfaces.IOrganizationRepository, services IServiceUseCase, proposals IProposalUseCase) *AdminUseCase {
	return &AdminUseCase{orgs: orgs, services: services, proposals: proposals}
}

func (u *AdminUseCase) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (entities.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Organization{}, ErrInvalidOrgData
	}
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}

	now := time.Now().UTC()
	org, err := u.orgs.Create(ctx, entities.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		Domain:    input.Domain,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Organization{}, err
	}
	log.Printf("[usecase][admin] organization created id=%s slug=%s", org.ID, org.Slug)
	return org, nil
}

func (u *AdminUseCase) GetOrganization(ctx context.Context, id string) (entities.Organization, error) {
	org, err := u.orgs.GetByID(ctx, id)
	if err != nil {
		return entities.Organization{}, err
	}
	if org.ID == "" {
		return entities.Organization{}, ErrOrgNotFound
	}
	return org, nil
}

func (u *AdminUseCase) ListOrganizations(ctx context.Context) ([]entities.Organization, error) {
	return u.orgs.List(ctx)
}

func (u *AdminUseCase) CreateService(ctx context.Context, orgID string, input CreateServiceInput) (entities.Service, error) {
	if _, err := u.GetOrganization(ctx, orgID); err != nil {
		return entities.Service{}, err
	}
	return u.services.Create(ctx, orgID, input)
}

// CreateProposal creates a proposal on behalf of a tenant, optionally
// pushing it straight through the send pipeline.
func (u *AdminUseCase) CreateProposal(ctx context.Context, input AdminCreateProposalInput) (entities.Proposal, error) {
	if _, err := u.GetOrganization(ctx, input.OrgID); err != nil {
		return entities.Proposal{}, err
	}

	p, err := u.proposals.Create(ctx, input.OrgID, input.Proposal)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !input.Send {
		return p, nil
	}

	sent, err := u.proposals.Send(ctx, input.OrgID, p.ID)
	if err != nil {
		// The draft exists; surface it with the send failure.
		log.Printf("[usecase][admin] immediate send failed proposal=%s err=%v", p.ID, err)
		return p, err
	}
	return sent, nil
}
