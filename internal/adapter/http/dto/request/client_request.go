package request

import "service_engine_x/internal/usecase"

type CreateClientRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	NameF    string  `json:"name_f" binding:"required"`
	NameL    string  `json:"name_l"`
	Company  *string `json:"company"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (r CreateClientRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Email:    r.Email,
		NameF:    r.NameF,
		NameL:    r.NameL,
		Company:  r.Company,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type UpdateClientRequest struct {
	NameF   *string `json:"name_f"`
	NameL   *string `json:"name_l"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Status  *int    `json:"status"`
}

func (r UpdateClientRequest) ToInput() usecase.UpdateClientInput {
	return usecase.UpdateClientInput{
		NameF:   r.NameF,
		NameL:   r.NameL,
		Company: r.Company,
		Phone:   r.Phone,
		Status:  r.Status,
	}
}
