package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/pkg"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Recurring   int       `json:"recurring"`
	Price       *string   `json:"price,omitempty"`
	Currency    string    `json:"currency"`
	Public      bool      `json:"public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	var price *string
	if s.Price != nil {
		v := pkg.FormatCurrency(*s.Price)
		price = &v
	}
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Recurring:   s.Recurring,
		Price:       price,
		Currency:    s.Currency,
		Public:      s.Public,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}
