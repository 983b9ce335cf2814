package request

import "service_engine_x/internal/usecase"

type CreateAccountRequest struct {
	Name     string  `json:"name" binding:"required"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
	Notes    *string `json:"notes"`
}

func (r CreateAccountRequest) ToInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:     r.Name,
		Website:  r.Website,
		Industry: r.Industry,
		Notes:    r.Notes,
	}
}

type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
	Notes    *string `json:"notes"`
}

func (r UpdateAccountRequest) ToInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Name:     r.Name,
		Website:  r.Website,
		Industry: r.Industry,
		Notes:    r.Notes,
	}
}

type CreateContactRequest struct {
	AccountID *string `json:"account_id"`
	Email     string  `json:"email" binding:"required,email"`
	NameF     string  `json:"name_f" binding:"required"`
	NameL     string  `json:"name_l"`
	Phone     *string `json:"phone"`
	Title     *string `json:"title"`
}

func (r CreateContactRequest) ToInput() usecase.CreateContactInput {
	return usecase.CreateContactInput{
		AccountID: r.AccountID,
		Email:     r.Email,
		NameF:     r.NameF,
		NameL:     r.NameL,
		Phone:     r.Phone,
		Title:     r.Title,
	}
}

type UpdateContactRequest struct {
	AccountID *string `json:"account_id"`
	Email     *string `json:"email"`
	NameF     *string `json:"name_f"`
	NameL     *string `json:"name_l"`
	Phone     *string `json:"phone"`
	Title     *string `json:"title"`
}

func (r UpdateContactRequest) ToInput() usecase.UpdateContactInput {
	return usecase.UpdateContactInput{
		AccountID: r.AccountID,
		Email:     r.Email,
		NameF:     r.NameF,
		NameL:     r.NameL,
		Phone:     r.Phone,
		Title:     r.Title,
	}
}
