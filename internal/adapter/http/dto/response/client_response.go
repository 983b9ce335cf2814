package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/pkg"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	NameF     string    `json:"name_f"`
	NameL     string    `json:"name_l"`
	Company   *string   `json:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Status    int       `json:"status"`
	Balance   string    `json:"balance"`
	Spent     string    `json:"spent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Email:     c.Email,
		NameF:     c.NameF,
		NameL:     c.NameL,
		Company:   c.Company,
		Phone:     c.Phone,
		Status:    int(c.Status),
		Balance:   pkg.FormatCurrency(c.Balance),
		Spent:     pkg.FormatCurrency(c.Spent),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}
