package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for Account.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Account, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Account, error)
	Update(ctx context.Context, a entities.Account) (entities.Account, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Account, error)
}

// IContactRepository abstracts DynamoDB persistence for Contact.

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Contact, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Contact, error)
	Update(ctx context.Context, c entities.Contact) (entities.Contact, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Contact, error)
}
