package request

import (
	"time"

	"service_engine_x/internal/usecase"
)

type InvoiceItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Discount    float64 `json:"discount" binding:"min=0"`
	ServiceID   *string `json:"service_id"`
}

type CreateInvoiceRequest struct {
	UserID  string               `json:"user_id" binding:"required"`
	Items   []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Tax     *float64             `json:"tax"`
	TaxType *int                 `json:"tax_type"`
	Note    *string              `json:"note"`
	DateDue *time.Time           `json:"date_due"`
}

func (r CreateInvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	items := make([]usecase.InvoiceItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.InvoiceItemInput{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
			Discount:    it.Discount,
			ServiceID:   it.ServiceID,
		})
	}
	return usecase.CreateInvoiceInput{
		UserID:  r.UserID,
		Items:   items,
		Tax:     r.Tax,
		TaxType: r.TaxType,
		Note:    r.Note,
		DateDue: r.DateDue,
	}
}

type UpdateInvoiceRequest struct {
	Status  *int       `json:"status"`
	Note    *string    `json:"note"`
	DateDue *time.Time `json:"date_due"`
}

func (r UpdateInvoiceRequest) ToInput() usecase.UpdateInvoiceInput {
	return usecase.UpdateInvoiceInput{Status: r.Status, Note: r.Note, DateDue: r.DateDue}
}
