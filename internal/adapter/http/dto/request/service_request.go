package request

import "service_engine_x/internal/usecase"

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Recurring   int      `json:"recurring" binding:"min=0,max=2"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	Public      bool     `json:"public"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Recurring:   r.Recurring,
		Price:       r.Price,
		Currency:    r.Currency,
		Public:      r.Public,
	}
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Recurring   *int     `json:"recurring"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Public      *bool    `json:"public"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Recurring:   r.Recurring,
		Price:       r.Price,
		Currency:    r.Currency,
		Public:      r.Public,
	}
}
