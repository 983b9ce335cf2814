package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"service_engine_x/internal/auth"
	"service_engine_x/internal/domain/entities"
	mock_interfaces "service_engine_x/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testJWTConfig = auth.JWTConfig{Secret: []byte("test-secret"), ExpirationHours: 1}

func newAuthUseCaseTest(ctrl *gomock.Controller) (*AuthUseCase, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIAPITokenRepository) {
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	tokens := mock_interfaces.NewMockIAPITokenRepository(ctrl)
	return NewAuthUseCase(clients, tokens, testJWTConfig), clients, tokens
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	client := entities.Client{
		ID:           "client-1",
		OrgID:        "org-1",
		Email:        "jane@acme.test",
		PasswordHash: string(hash),
	}

	t.Run("empty credentials", func(t *testing.T) {
		uc, _, _ := newAuthUseCaseTest(gomock.NewController(t))
		_, err := uc.Login(context.Background(), "", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, _ := newAuthUseCaseTest(ctrl)

		clients.EXPECT().GetByEmailAnyOrg(gomock.Any(), "nobody@acme.test").Return(entities.Client{}, nil)

		_, err := uc.Login(context.Background(), "nobody@acme.test", "hunter2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, _ := newAuthUseCaseTest(ctrl)

		clients.EXPECT().GetByEmailAnyOrg(gomock.Any(), "jane@acme.test").Return(client, nil)

		_, err := uc.Login(context.Background(), "jane@acme.test", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("no password set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, _ := newAuthUseCaseTest(ctrl)

		noPass := client
		noPass.PasswordHash = ""
		clients.EXPECT().GetByEmailAnyOrg(gomock.Any(), "jane@acme.test").Return(noPass, nil)

		_, err := uc.Login(context.Background(), "jane@acme.test", "hunter2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("login issues a verifiable session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clients, _ := newAuthUseCaseTest(ctrl)

		clients.EXPECT().GetByEmailAnyOrg(gomock.Any(), "jane@acme.test").Return(client, nil)

		res, err := uc.Login(context.Background(), " Jane@Acme.test ", "hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token == "" || res.Client.ID != "client-1" {
			t.Fatalf("unexpected login result: %+v", res)
		}

		ac, err := uc.VerifyBearer(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ac.OrgID != "org-1" || ac.UserID != "client-1" || ac.Role != "client" {
			t.Fatalf("unexpected auth context: %+v", ac)
		}
	})
}

func TestAuthUseCase_MintAPIToken(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc, _, _ := newAuthUseCaseTest(gomock.NewController(t))
		_, err := uc.MintAPIToken(context.Background(), "org-1", "client-1", "  ", nil)
		if !errors.Is(err, ErrTokenNameRequired) {
			t.Fatalf("expected ErrTokenNameRequired, got %v", err)
		}
	})

	t.Run("raw token appears once and only the hash is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens := newAuthUseCaseTest(ctrl)

		var stored entities.APIToken
		tokens.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.APIToken{})).DoAndReturn(
			func(_ context.Context, tok entities.APIToken) (entities.APIToken, error) {
				stored = tok
				return tok, nil
			},
		)

		minted, err := uc.MintAPIToken(context.Background(), "org-1", "client-1", "ci", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(minted.Raw, "sengx_") {
			t.Fatalf("expected sengx_ prefix, got %q", minted.Raw)
		}
		if stored.TokenHash != auth.HashToken(minted.Raw) {
			t.Fatalf("expected stored hash to match raw token")
		}
		if stored.TokenHash == minted.Raw {
			t.Fatalf("raw token must not be persisted")
		}
	})
}

func TestAuthUseCase_VerifyBearer(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc, _, _ := newAuthUseCaseTest(gomock.NewController(t))
		_, err := uc.VerifyBearer(context.Background(), "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("garbage jwt", func(t *testing.T) {
		uc, _, _ := newAuthUseCaseTest(gomock.NewController(t))
		_, err := uc.VerifyBearer(context.Background(), "aa.bb.cc")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown api token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens := newAuthUseCaseTest(ctrl)

		tokens.EXPECT().GetByHash(gomock.Any(), auth.HashToken("sengx_unknown")).
			Return(entities.APIToken{}, nil)

		_, err := uc.VerifyBearer(context.Background(), "sengx_unknown")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("expired api token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens := newAuthUseCaseTest(ctrl)

		expired := time.Now().UTC().Add(-time.Hour)
		tokens.EXPECT().GetByHash(gomock.Any(), gomock.Any()).
			Return(entities.APIToken{ID: "tok-1", OrgID: "org-1", ExpiresAt: &expired}, nil)

		_, err := uc.VerifyBearer(context.Background(), "sengx_expired")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid api token touches last_used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens := newAuthUseCaseTest(ctrl)

		tokens.EXPECT().GetByHash(gomock.Any(), auth.HashToken("sengx_good")).
			Return(entities.APIToken{ID: "tok-1", OrgID: "org-1", UserID: "client-1"}, nil)
		tokens.EXPECT().TouchLastUsed(gomock.Any(), "tok-1", gomock.Any()).Return(nil)

		ac, err := uc.VerifyBearer(context.Background(), "sengx_good")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ac.OrgID != "org-1" || ac.UserID != "client-1" || ac.Role != "api" {
			t.Fatalf("unexpected auth context: %+v", ac)
		}
	})

	t.Run("touch failure does not reject the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, tokens := newAuthUseCaseTest(ctrl)

		tokens.EXPECT().GetByHash(gomock.Any(), gomock.Any()).
			Return(entities.APIToken{ID: "tok-1", OrgID: "org-1"}, nil)
		tokens.EXPECT().TouchLastUsed(gomock.Any(), "tok-1", gomock.Any()).Return(errors.New("db"))

		if _, err := uc.VerifyBearer(context.Background(), "sengx_good"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
