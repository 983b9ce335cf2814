package interfaces

import (
	"context"

	"service_engine_x/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Invoice, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	SoftDelete(ctx context.Context, orgID, id string) (entities.Invoice, error)
}
