package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Lookups return the zero value when nothing matches (including cross-org
// lookups, so callers cannot distinguish "missing" from "not yours").
// TransitionAndUpdate is the status gate: it writes the given proposal state
// only if the persisted status still equals from, and returns the zero value
// when the conditional write loses. Concurrent send/sign races resolve there.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Proposal, error)
	GetByIDPublic(ctx context.Context, id string) (entities.Proposal, error)
	GetByDocumentID(ctx context.Context, documentID string) (entities.Proposal, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Proposal, error)
	TransitionAndUpdate(ctx context.Context, p entities.Proposal, from entities.ProposalStatus) (entities.Proposal, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Proposal, error)
}
