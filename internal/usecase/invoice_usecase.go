package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNoItems          = errors.New("invoice requires at least one item")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
	ErrInvoiceStatusTransition = errors.New("illegal invoice status transition")
)

var (
	InvoiceSortable   = []string{"created_at", "updated_at", "total", "status", "number", "date_due"}
	InvoiceFilterable = []string{"status", "number", "user_id", "created_at", "date_due"}
)

type InvoiceItemInput struct {
	Name        string
	Description *string
	Quantity    int
	Amount      float64
	Discount    float64
	ServiceID   *string
}

type CreateInvoiceInput struct {
	UserID  string
	Items   []InvoiceItemInput
	Tax     *float64
	TaxType *int
	Note    *string
	DateDue *time.Time
}

type UpdateInvoiceInput struct {
	Status  *int
	Note    *string
	DateDue *time.Time
}

// IInvoiceUseCase exposes invoice operations. Status changes go through the
// static transition table; MarkPaid is the one shortcut, stamping date_paid.

type IInvoiceUseCase interface {
	Create(ctx context.Context, orgID string, input CreateInvoiceInput) (entities.Invoice, error)
	GetByID(ctx context.Context, orgID, id string) (entities.Invoice, error)
	List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Invoice, int, error)
	Update(ctx context.Context, orgID, id string, input UpdateInvoiceInput) (entities.Invoice, error)
	MarkPaid(ctx context.Context, orgID, id string) (entities.Invoice, error)
	Delete(ctx context.Context, orgID, id string) error
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	clients  interfaces.IClientRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoices interfaces.IInvoiceRepository, clients interfaces.IClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, clients: clients}
}

func (u *InvoiceUseCase) Create(ctx context.Context, orgID string, input CreateInvoiceInput) (entities.Invoice, error) {
	if len(input.Items) == 0 {
		return entities.Invoice{}, ErrInvoiceNoItems
	}

	client, err := u.clients.GetByID(ctx, orgID, input.UserID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if client.ID == "" || client.DeletedAt != nil {
		return entities.Invoice{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	total := 0.0
	items := make([]entities.InvoiceItem, 0, len(input.Items))
	for _, it := range input.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		lineTotal := it.Amount*float64(qty) - it.Discount
		if lineTotal < 0 {
			lineTotal = 0
		}
		total += lineTotal
		items = append(items, entities.InvoiceItem{
			ID:          uuid.NewString(),
			Name:        it.Name,
			Description: it.Description,
			Quantity:    qty,
			Amount:      it.Amount,
			Discount:    it.Discount,
			Total:       lineTotal,
			ServiceID:   it.ServiceID,
			CreatedAt:   now,
		})
	}
	if input.Tax != nil {
		if input.TaxType != nil && *input.TaxType == 2 {
			total += total * (*input.Tax) / 100
		} else {
			total += *input.Tax
		}
	}

	inv := entities.Invoice{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Number:    pkg.GenerateOrderNumber(),
		UserID:    input.UserID,
		Status:    entities.InvoiceStatusDraft,
		Items:     items,
		Tax:       input.Tax,
		TaxType:   input.TaxType,
		Total:     total,
		Note:      input.Note,
		DateDue:   input.DateDue,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[usecase][invoice] created id=%s org=%s total=%s", created.ID, orgID, pkg.FormatCurrency(total))
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, orgID, id string) (entities.Invoice, error) {
	inv, err := u.invoices.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" || inv.DeletedAt != nil {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, orgID string, q pkg.ListQuery) ([]entities.Invoice, int, error) {
	all, err := u.invoices.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	live := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.DeletedAt == nil {
			live = append(live, inv)
		}
	}
	page, total := pkg.ApplyListQuery(live, q, invoiceField)
	return page, total, nil
}

func invoiceField(inv entities.Invoice, field string) (string, bool) {
	switch field {
	case "status":
		return fmt.Sprintf("%d", int(inv.Status)), true
	case "number":
		return inv.Number, true
	case "user_id":
		return inv.UserID, true
	case "total":
		return fmt.Sprintf("%f", inv.Total), true
	case "created_at":
		return inv.CreatedAt.UTC().Format(time.RFC3339Nano), true
	case "updated_at":
		return inv.UpdatedAt.UTC().Format(time.RFC3339Nano), true
	case "date_due":
		if inv.DateDue == nil {
			return "", true
		}
		return inv.DateDue.UTC().Format(time.RFC3339Nano), true
	}
	return "", false
}

func (u *InvoiceUseCase) Update(ctx context.Context, orgID, id string, input UpdateInvoiceInput) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if input.Status != nil {
		next := entities.InvoiceStatus(*input.Status)
		if !entities.ValidInvoiceStatus(next) {
			return entities.Invoice{}, fmt.Errorf("%w: %d", ErrInvalidInvoiceStatus, *input.Status)
		}
		if !entities.CanTransitionInvoiceStatus(inv.Status, next) {
			return entities.Invoice{}, fmt.Errorf("%w: %s -> %s",
				ErrInvoiceStatusTransition,
				entities.InvoiceStatusLabel(inv.Status),
				entities.InvoiceStatusLabel(next))
		}
		if next == entities.InvoiceStatusPaid && inv.Status != entities.InvoiceStatusPaid {
			now := time.Now().UTC()
			inv.DatePaid = &now
		}
		inv.Status = next
	}
	if input.Note != nil {
		inv.Note = input.Note
	}
	if input.DateDue != nil {
		inv.DateDue = input.DateDue
	}

	updated, err := u.invoices.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, orgID, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	// Idempotent: already paid returns the current state.
	if inv.Status == entities.InvoiceStatusPaid {
		return inv, nil
	}
	// Manual payment bypasses the transition table, except for the two
	// states where collecting money makes no sense.
	if inv.Status == entities.InvoiceStatusRefunded || inv.Status == entities.InvoiceStatusCancelled {
		return entities.Invoice{}, fmt.Errorf("%w: cannot mark %s invoice as paid",
			ErrInvoiceStatusTransition, entities.InvoiceStatusLabel(inv.Status))
	}

	now := time.Now().UTC()
	inv.Status = entities.InvoiceStatusPaid
	inv.DatePaid = &now

	updated, err := u.invoices.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[usecase][invoice] marked paid id=%s org=%s", id, orgID)
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, orgID, id string) error {
	if _, err := u.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	deleted, err := u.invoices.SoftDelete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrInvoiceNotFound
	}
	return nil
}
