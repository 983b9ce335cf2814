package response

import (
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase"
)

type LoginResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Client: FromClient(r.Client)}
}

// APITokenResponse includes the raw token only in the creation response.
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Token      string     `json:"token,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromMintedToken(m usecase.MintedToken) APITokenResponse {
	return APITokenResponse{
		ID:        m.Token.ID,
		Name:      m.Token.Name,
		Token:     m.Raw,
		ExpiresAt: m.Token.ExpiresAt,
		CreatedAt: m.Token.CreatedAt,
	}
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Domain    *string   `json:"domain,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrganization(o entities.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		Domain:    o.Domain,
		Email:     o.Email,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrganizations(list []entities.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrganization(o))
	}
	return out
}
