package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"service_engine_x/internal/auth"
	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	"service_engine_x/pkg"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNameRequired  = errors.New("token name is required")
)

type LoginResult struct {
	Token  string
	Client entities.Client
}

// MintedToken carries the raw token exactly once, at creation time. After
// this only the hash exists.
type MintedToken struct {
	Token entities.APIToken
	Raw   string
}

// AuthContext is the resolved identity attached to a request.
type AuthContext struct {
	OrgID  string
	UserID string
	Role   string
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	MintAPIToken(ctx context.Context, orgID, userID, name string, expiresAt *time.Time) (MintedToken, error)
	VerifyBearer(ctx context.Context, token string) (AuthContext, error)
}

type AuthUseCase struct {
	clients   interfaces.IClientRepository
	apiTokens interfaces.IAPITokenRepository
	jwtConfig auth.JWTConfig
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(clients interfaces.IClientRepository, apiTokens interfaces.IAPITokenRepository, jwtConfig auth.JWTConfig) *AuthUseCase {
	return &AuthUseCase{clients: clients, apiTokens: apiTokens, jwtConfig: jwtConfig}
}

// Login verifies a client password and mints a session JWT. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	client, err := u.clients.GetByEmailAnyOrg(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if client.ID == "" || client.PasswordHash == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := auth.CreateSessionToken(u.jwtConfig, client.ID, client.OrgID, "client")
	if err != nil {
		return LoginResult{}, err
	}
	log.Printf("[usecase][auth] session issued user=%s org=%s", client.ID, client.OrgID)
	return LoginResult{Token: token, Client: client}, nil
}

// MintAPIToken creates an opaque API token and returns the raw value once.
func (u *AuthUseCase) MintAPIToken(ctx context.Context, orgID, userID, name string, expiresAt *time.Time) (MintedToken, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MintedToken{}, ErrTokenNameRequired
	}

	raw := pkg.GenerateAPIToken()
	t := entities.APIToken{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		UserID:    userID,
		Name:      name,
		TokenHash: auth.HashToken(raw),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.apiTokens.Create(ctx, t)
	if err != nil {
		return MintedToken{}, err
	}
	log.Printf("[usecase][auth] api token minted id=%s org=%s", created.ID, orgID)
	return MintedToken{Token: created, Raw: raw}, nil
}

// VerifyBearer resolves a bearer credential to an identity. JWTs are verified
// locally; opaque tokens are looked up by hash, checked for expiry, and get
// their last_used_at refreshed best effort.
func (u *AuthUseCase) VerifyBearer(ctx context.Context, token string) (AuthContext, error) {
	if token == "" {
		return AuthContext{}, ErrInvalidCredentials
	}

	if auth.LooksLikeJWT(token) {
		claims, err := auth.ParseSessionToken(u.jwtConfig, token)
		if err != nil {
			return AuthContext{}, ErrInvalidCredentials
		}
		return AuthContext{OrgID: claims.OrgID, UserID: claims.Subject, Role: claims.RoleID}, nil
	}

	t, err := u.apiTokens.GetByHash(ctx, auth.HashToken(token))
	if err != nil {
		return AuthContext{}, err
	}
	if t.ID == "" {
		return AuthContext{}, ErrInvalidCredentials
	}
	if t.ExpiresAt != nil && time.Now().UTC().After(*t.ExpiresAt) {
		return AuthContext{}, ErrInvalidCredentials
	}

	if err := u.apiTokens.TouchLastUsed(ctx, t.ID, time.Now().UTC()); err != nil {
		log.Printf("[usecase][auth] touch last_used failed token=%s err=%v", t.ID, err)
	}
	return AuthContext{OrgID: t.OrgID, UserID: t.UserID, Role: "api"}, nil
}
