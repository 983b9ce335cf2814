package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/pkg"
)

type InvoiceItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Amount      string  `json:"amount"`
	Discount    string  `json:"discount"`
	Total       string  `json:"total"`
	ServiceID   *string `json:"service_id,omitempty"`
}

type InvoiceResponse struct {
	ID          string                `json:"id"`
	Number      string                `json:"number"`
	UserID      string                `json:"user_id"`
	Status      int                   `json:"status"`
	StatusLabel string                `json:"status_label"`
	Items       []InvoiceItemResponse `json:"items"`
	Tax         *float64              `json:"tax,omitempty"`
	TaxType     *int                  `json:"tax_type,omitempty"`
	Total       string                `json:"total"`
	Note        *string               `json:"note,omitempty"`
	DateDue     *time.Time            `json:"date_due,omitempty"`
	DatePaid    *time.Time            `json:"date_paid,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      pkg.FormatCurrency(it.Amount),
			Discount:    pkg.FormatCurrency(it.Discount),
			Total:       pkg.FormatCurrency(it.Total),
			ServiceID:   it.ServiceID,
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		UserID:      inv.UserID,
		Status:      int(inv.Status),
		StatusLabel: entities.InvoiceStatusLabel(inv.Status),
		Items:       items,
		Tax:         inv.Tax,
		TaxType:     inv.TaxType,
		Total:       pkg.FormatCurrency(inv.Total),
		Note:        inv.Note,
		DateDue:     inv.DateDue,
		DatePaid:    inv.DatePaid,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}
