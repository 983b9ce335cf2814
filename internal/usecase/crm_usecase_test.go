package usecase

import (
	"context"
	"errors"
	"testing"

	"service_engine_x/internal/domain/entities"
	mock_interfaces "service_engine_x/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCRMUseCaseTest(ctrl *gomock.Controller) (*CRMUseCase, *mock_interfaces.MockIAccountRepository, *mock_interfaces.MockIContactRepository) {
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	contacts := mock_interfaces.NewMockIContactRepository(ctrl)
	return NewCRMUseCase(accounts, contacts), accounts, contacts
}

func TestCRMUseCase_Accounts(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc, _, _ := newCRMUseCaseTest(gomock.NewController(t))
		_, err := uc.CreateAccount(context.Background(), "org-1", CreateAccountInput{Name: "  "})
		if !errors.Is(err, ErrInvalidAccountData) {
			t.Fatalf("expected ErrInvalidAccountData, got %v", err)
		}
	})

	t.Run("create account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, accounts, _ := newCRMUseCaseTest(ctrl)

		accounts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Account{})).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if a.Name != "Acme Co" || a.OrgID != "org-1" || a.ID == "" {
					t.Fatalf("unexpected account: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.CreateAccount(context.Background(), "org-1", CreateAccountInput{Name: " Acme Co "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update rejects blanked name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, accounts, _ := newCRMUseCaseTest(ctrl)

		accounts.EXPECT().GetByID(gomock.Any(), "org-1", "acct-1").
			Return(entities.Account{ID: "acct-1", Name: "Acme"}, nil)

		blank := " "
		_, err := uc.UpdateAccount(context.Background(), "org-1", "acct-1", UpdateAccountInput{Name: &blank})
		if !errors.Is(err, ErrInvalidAccountData) {
			t.Fatalf("expected ErrInvalidAccountData, got %v", err)
		}
	})
}

func TestCRMUseCase_Contacts(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc, _, _ := newCRMUseCaseTest(gomock.NewController(t))
		_, err := uc.CreateContact(context.Background(), "org-1", CreateContactInput{Email: "nope"})
		if !errors.Is(err, ErrInvalidContactData) {
			t.Fatalf("expected ErrInvalidContactData, got %v", err)
		}
	})

	t.Run("account reference must resolve in org", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, accounts, _ := newCRMUseCaseTest(ctrl)

		acctID := "acct-other-org"
		accounts.EXPECT().GetByID(gomock.Any(), "org-1", "acct-other-org").Return(entities.Account{}, nil)

		_, err := uc.CreateContact(context.Background(), "org-1", CreateContactInput{
			Email:     "jane@acme.test",
			AccountID: &acctID,
		})
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("create contact normalizes email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, contacts := newCRMUseCaseTest(ctrl)

		contacts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.Email != "jane@acme.test" || c.NameF != "Jane" {
					t.Fatalf("unexpected contact: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.CreateContact(context.Background(), "org-1", CreateContactInput{
			Email: " Jane@Acme.TEST ",
			NameF: " Jane ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cross org contact lookup reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, contacts := newCRMUseCaseTest(ctrl)

		contacts.EXPECT().GetByID(gomock.Any(), "org-1", "contact-9").Return(entities.Contact{}, nil)

		_, err := uc.GetContact(context.Background(), "org-1", "contact-9")
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})
}
