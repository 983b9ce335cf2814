package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"
	mock_interfaces "service_engine_x/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type proposalDeps struct {
	proposals   *mock_interfaces.MockIProposalRepository
	clients     *mock_interfaces.MockIClientRepository
	engagements *mock_interfaces.MockIEngagementRepository
	projects    *mock_interfaces.MockIProjectRepository
	orders      *mock_interfaces.MockIOrderRepository
	services    *mock_interfaces.MockIServiceRepository
	orgs        *mock_interfaces.MockIOrganizationRepository
	renderer    *mock_interfaces.MockIPDFRenderer
	storage     *mock_interfaces.MockIDocumentStorage
	signatures  *mock_interfaces.MockISignatureGateway
	checkout    *mock_interfaces.MockICheckoutGateway
	email       *mock_interfaces.MockIEmailSender
}

func newProposalUseCaseTest(ctrl *gomock.Controller) (*ProposalUseCase, proposalDeps) {
	d := proposalDeps{
		proposals:   mock_interfaces.NewMockIProposalRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		engagements: mock_interfaces.NewMockIEngagementRepository(ctrl),
		projects:    mock_interfaces.NewMockIProjectRepository(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		services:    mock_interfaces.NewMockIServiceRepository(ctrl),
		orgs:        mock_interfaces.NewMockIOrganizationRepository(ctrl),
		renderer:    mock_interfaces.NewMockIPDFRenderer(ctrl),
		storage:     mock_interfaces.NewMockIDocumentStorage(ctrl),
		signatures:  mock_interfaces.NewMockISignatureGateway(ctrl),
		checkout:    mock_interfaces.NewMockICheckoutGateway(ctrl),
		email:       mock_interfaces.NewMockIEmailSender(ctrl),
	}
	uc := NewProposalUseCase(
		d.proposals, d.clients, d.engagements, d.projects, d.orders,
		d.services, d.orgs, d.renderer, d.storage, d.signatures,
		d.checkout, d.email, "https://app.example.com",
	)
	return uc, d
}

func sentProposal() entities.Proposal {
	now := time.Now().UTC().Add(-time.Hour)
	company := "Acme Co"
	return entities.Proposal{
		ID:                    "prop-1",
		OrgID:                 "org-1",
		ContactEmail:          "jane@acme.test",
		ContactNameF:          "Jane",
		ContactNameL:          "Doe",
		ContactCompany:        &company,
		Status:                entities.ProposalStatusSent,
		Total:                 300,
		DocumensoDocumentID:   "doc-9",
		DocumensoSigningToken: "tok-9",
		Items: []entities.ProposalItem{
			{ID: "item-1", Name: "Design", Description: "Logo design", Price: 100, CreatedAt: now},
			{ID: "item-2", Name: "Build", Price: 200, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("invalid contact email", func(t *testing.T) {
		uc, _ := newProposalUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateProposalInput{
			ContactEmail: "not-an-email",
			Items:        []ProposalItemInput{{Name: "x", Price: 1}},
		})
		if !errors.Is(err, ErrInvalidContactEmail) {
			t.Fatalf("expected ErrInvalidContactEmail, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc, _ := newProposalUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateProposalInput{ContactEmail: "a@b.test"})
		if !errors.Is(err, ErrProposalNoItems) {
			t.Fatalf("expected ErrProposalNoItems, got %v", err)
		}
	})

	t.Run("negative item price", func(t *testing.T) {
		uc, _ := newProposalUseCaseTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "org-1", CreateProposalInput{
			ContactEmail: "a@b.test",
			Items:        []ProposalItemInput{{Name: "x", Price: -1}},
		})
		if !errors.Is(err, ErrInvalidItemPrice) {
			t.Fatalf("expected ErrInvalidItemPrice, got %v", err)
		}
	})

	t.Run("unknown service reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)
		svcID := "svc-missing"

		d.services.EXPECT().ListByIDs(gomock.Any(), "org-1", []string{"svc-missing"}).Return(nil, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateProposalInput{
			ContactEmail: "a@b.test",
			Items:        []ProposalItemInput{{Name: "x", Price: 1, ServiceID: &svcID}},
		})
		if !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})

	t.Run("soft deleted service rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)
		svcID := "svc-1"
		gone := time.Now().UTC()

		d.services.EXPECT().ListByIDs(gomock.Any(), "org-1", []string{"svc-1"}).
			Return([]entities.Service{{ID: "svc-1", DeletedAt: &gone}}, nil)

		_, err := uc.Create(context.Background(), "org-1", CreateProposalInput{
			ContactEmail: "a@b.test",
			Items:        []ProposalItemInput{{Name: "x", Price: 1, ServiceID: &svcID}},
		})
		if !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.OrgID != "org-1" || p.Status != entities.ProposalStatusDraft {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.ContactEmail != "jane@acme.test" {
					t.Fatalf("expected normalized email, got %q", p.ContactEmail)
				}
				if p.Total != 300 || len(p.Items) != 2 {
					t.Fatalf("expected total 300 over 2 items, got %+v", p)
				}
				for _, it := range p.Items {
					if it.ID == "" || it.CreatedAt.IsZero() {
						t.Fatalf("expected item ids and timestamps: %+v", it)
					}
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), "org-1", CreateProposalInput{
			ContactEmail: "  Jane@Acme.test ",
			ContactNameF: "Jane",
			ContactNameL: "Doe",
			Items: []ProposalItemInput{
				{Name: "Design", Price: 100},
				{Name: "Build", Price: 200},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProposalUseCase_GetPublic(t *testing.T) {
	t.Run("draft is invisible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		d.proposals.EXPECT().GetByIDPublic(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.GetPublic(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("signing token withheld once signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusSigned
		d.proposals.EXPECT().GetByIDPublic(gomock.Any(), "prop-1").Return(p, nil)

		got, err := uc.GetPublic(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DocumensoSigningToken != "" {
			t.Fatalf("expected signing token to be withheld")
		}
	})

	t.Run("sent keeps signing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByIDPublic(gomock.Any(), "prop-1").Return(sentProposal(), nil)

		got, err := uc.GetPublic(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DocumensoSigningToken != "tok-9" {
			t.Fatalf("expected signing token, got %q", got.DocumensoSigningToken)
		}
	})
}

func TestProposalUseCase_Send(t *testing.T) {
	draft := func() entities.Proposal {
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		p.DocumensoDocumentID = ""
		p.DocumensoSigningToken = ""
		return p
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("already sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if !errors.Is(err, ErrProposalStatusConflict) {
			t.Fatalf("expected ErrProposalStatusConflict, got %v", err)
		}
	})

	t.Run("render failure aborts with no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "proposal-prop-1.pdf").
			Return(nil, errors.New("render down"))

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if err == nil || err.Error() != "render down" {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("upload failure aborts with no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		d.storage.EXPECT().UploadProposalPDF(gomock.Any(), "org-1", "prop-1", []byte("pdf")).
			Return("", errors.New("s3 down"))

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if err == nil || err.Error() != "s3 down" {
			t.Fatalf("expected upload error, got %v", err)
		}
	})

	t.Run("signature registration failure aborts with no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		d.storage.EXPECT().UploadProposalPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://bucket/prop-1.pdf", nil)
		d.signatures.EXPECT().CreateSigningRequest(gomock.Any(), gomock.Any()).
			Return(interfaces.SigningDocument{}, errors.New("documenso down"))

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if err == nil || err.Error() != "documenso down" {
			t.Fatalf("expected signature error, got %v", err)
		}
	})

	t.Run("lost send race is a status conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		d.storage.EXPECT().UploadProposalPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://bucket/prop-1.pdf", nil)
		d.signatures.EXPECT().CreateSigningRequest(gomock.Any(), gomock.Any()).
			Return(interfaces.SigningDocument{DocumentID: "42", SigningToken: "tok"}, nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusDraft).
			Return(entities.Proposal{}, nil)

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if !errors.Is(err, ErrProposalStatusConflict) {
			t.Fatalf("expected ErrProposalStatusConflict, got %v", err)
		}
	})

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "proposal-prop-1.pdf").DoAndReturn(
			func(_ context.Context, html, _ string) ([]byte, error) {
				if !strings.Contains(html, "Jane Doe") || !strings.Contains(html, "300.00") {
					t.Fatalf("unexpected rendered html: %s", html)
				}
				return []byte("pdf"), nil
			},
		)
		d.storage.EXPECT().UploadProposalPDF(gomock.Any(), "org-1", "prop-1", []byte("pdf")).
			Return("https://bucket/prop-1.pdf", nil)
		d.signatures.EXPECT().CreateSigningRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.SigningRequest) (interfaces.SigningDocument, error) {
				if req.RecipientEmail != "jane@acme.test" || req.RecipientName != "Jane Doe" {
					t.Fatalf("unexpected signing request: %+v", req)
				}
				return interfaces.SigningDocument{DocumentID: "42", SigningToken: "tok"}, nil
			},
		)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusDraft).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusSent || p.SentAt == nil {
					t.Fatalf("expected Sent with timestamp: %+v", p)
				}
				if p.PDFURL == nil || *p.PDFURL != "https://bucket/prop-1.pdf" {
					t.Fatalf("expected pdf url: %+v", p.PDFURL)
				}
				if p.DocumensoDocumentID != "42" || p.DocumensoSigningToken != "tok" {
					t.Fatalf("expected signing handles: %+v", p)
				}
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{ID: "org-1", Name: "Studio"}, nil)
		d.email.EXPECT().SendProposalEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e interfaces.ProposalEmail) error {
				if e.ToEmail != "jane@acme.test" || e.OrgName != "Studio" {
					t.Fatalf("unexpected email: %+v", e)
				}
				if e.SigningURL != "https://app.example.com/proposals/prop-1" {
					t.Fatalf("unexpected signing url: %s", e.SigningURL)
				}
				return nil
			},
		)

		got, err := uc.Send(context.Background(), "org-1", "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProposalStatusSent {
			t.Fatalf("expected Sent, got %d", got.Status)
		}
	})

	t.Run("email failure does not fail send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(draft(), nil)
		d.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		d.storage.EXPECT().UploadProposalPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://bucket/prop-1.pdf", nil)
		d.signatures.EXPECT().CreateSigningRequest(gomock.Any(), gomock.Any()).
			Return(interfaces.SigningDocument{DocumentID: "42", SigningToken: "tok"}, nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusDraft).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{}, errors.New("db"))
		d.email.EXPECT().SendProposalEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := uc.Send(context.Background(), "org-1", "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Sign(t *testing.T) {
	t.Run("draft cannot sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(p, nil)

		_, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if !errors.Is(err, ErrProposalStatusConflict) {
			t.Fatalf("expected ErrProposalStatusConflict, got %v", err)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusSigned
		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(p, nil)

		_, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if !errors.Is(err, ErrProposalAlreadySigned) {
			t.Fatalf("expected ErrProposalAlreadySigned, got %v", err)
		}
	})

	t.Run("lost claim race reports already signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).
			Return(entities.Proposal{}, nil)

		_, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if !errors.Is(err, ErrProposalAlreadySigned) {
			t.Fatalf("expected ErrProposalAlreadySigned, got %v", err)
		}
	})

	t.Run("sign converts into engagement, projects and order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusSigned || p.SignedAt == nil {
					t.Fatalf("expected Signed claim: %+v", p)
				}
				if p.Signature.SignerName != "Jane Doe" || p.Signature.SignerIP != "10.0.0.1" {
					t.Fatalf("expected signature evidence: %+v", p.Signature)
				}
				return p, nil
			},
		)
		d.clients.EXPECT().GetByEmail(gomock.Any(), "org-1", "jane@acme.test").Return(entities.Client{}, nil)
		d.clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Email != "jane@acme.test" || c.OrgID != "org-1" || c.Status != entities.ClientStatusActive {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			},
		)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Engagement{})).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.Name != "Acme Co" || e.Status != entities.EngagementStatusActive {
					t.Fatalf("unexpected engagement: %+v", e)
				}
				if e.ProposalID == nil || *e.ProposalID != "prop-1" {
					t.Fatalf("expected proposal link: %+v", e)
				}
				return e, nil
			},
		)
		d.projects.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusActive || p.Phase != entities.ProjectPhaseKickoff {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)
		d.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusUnpaid || o.Price != 300 || o.Number == "" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Metadata.ProposalID != "prop-1" || len(o.Metadata.ProposalItems) != 2 {
					t.Fatalf("expected metadata snapshot: %+v", o.Metadata)
				}
				if o.Metadata.SignedVia != "api" {
					t.Fatalf("expected signed_via api, got %q", o.Metadata.SignedVia)
				}
				return o, nil
			},
		)
		d.checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
				if req.Metadata["proposal_id"] != "prop-1" || req.Metadata["org_id"] != "org-1" {
					t.Fatalf("expected checkout metadata: %+v", req.Metadata)
				}
				if len(req.Items) != 2 || req.Items[0].AmountCents != 10000 {
					t.Fatalf("expected cent amounts: %+v", req.Items)
				}
				return interfaces.CheckoutSession{SessionID: "sess-1", CheckoutURL: "https://pay.test/sess-1"}, nil
			},
		)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSigned).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				if p.ConvertedOrderID == nil || p.ConvertedEngagementID == nil {
					t.Fatalf("expected converted links: %+v", p)
				}
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{ID: "org-1"}, nil)

		res, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{
			SignerName: "Jane Doe",
			SignerIP:   "10.0.0.1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AlreadySigned {
			t.Fatalf("expected fresh conversion")
		}
		if len(res.Projects) != 2 || res.Order.ID == "" || res.Engagement.ID == "" {
			t.Fatalf("unexpected conversion result: %+v", res)
		}
		if res.CheckoutURL != "https://pay.test/sess-1" {
			t.Fatalf("unexpected checkout url: %s", res.CheckoutURL)
		}
	})

	t.Run("checkout failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.clients.EXPECT().GetByEmail(gomock.Any(), "org-1", "jane@acme.test").
			Return(entities.Client{ID: "client-1", OrgID: "org-1"}, nil)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) { return e, nil },
		)
		d.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.UserID != "client-1" {
					t.Fatalf("expected existing client reuse, got %q", o.UserID)
				}
				return o, nil
			},
		)
		d.checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{}, errors.New("mp down"))
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSigned).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{}, nil)

		res, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CheckoutURL != "" {
			t.Fatalf("expected empty checkout url, got %s", res.CheckoutURL)
		}
		if res.Proposal.Status != entities.ProposalStatusSigned {
			t.Fatalf("expected signed proposal despite checkout failure")
		}
	})

	t.Run("project insert failure does not block the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.clients.EXPECT().GetByEmail(gomock.Any(), "org-1", "jane@acme.test").
			Return(entities.Client{ID: "client-1"}, nil)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) { return e, nil },
		)
		first := d.projects.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Project{}, errors.New("dynamo write throttled"))
		d.projects.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		orderCreated := false
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				orderCreated = true
				return o, nil
			},
		)
		d.checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{CheckoutURL: "https://pay.test/s"}, nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSigned).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				if p.ConvertedOrderID == nil {
					t.Fatalf("expected converted order link: %+v", p)
				}
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{}, nil)

		res, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !orderCreated || res.Order.ID == "" {
			t.Fatalf("expected the order despite the failed project: %+v", res)
		}
		if len(res.Projects) != 1 {
			t.Fatalf("expected the surviving project only, got %d", len(res.Projects))
		}
	})

	t.Run("order number collision regenerates once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.clients.EXPECT().GetByEmail(gomock.Any(), "org-1", "jane@acme.test").
			Return(entities.Client{ID: "client-1"}, nil)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) { return e, nil },
		)
		d.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		var numbers []string
		first := d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				numbers = append(numbers, o.Number)
				return entities.Order{}, nil
			},
		)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				numbers = append(numbers, o.Number)
				return o, nil
			},
		)
		d.checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{CheckoutURL: "https://pay.test/s"}, nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSigned).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{}, nil)

		_, err := uc.Sign(context.Background(), "org-1", "prop-1", SignatureInput{SignerName: "Jane"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers) != 2 || numbers[0] == numbers[1] {
			t.Fatalf("expected a regenerated order number: %v", numbers)
		}
	})
}

func TestProposalUseCase_HandleSignatureEvent(t *testing.T) {
	t.Run("unknown document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByDocumentID(gomock.Any(), "42").Return(entities.Proposal{}, nil)

		_, err := uc.HandleSignatureEvent(context.Background(), "42", SignatureInput{})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("replay acknowledges without cascade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusSigned
		d.proposals.EXPECT().GetByDocumentID(gomock.Any(), "42").Return(p, nil)

		res, err := uc.HandleSignatureEvent(context.Background(), "42", SignatureInput{SignerName: "Jane"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AlreadySigned {
			t.Fatalf("expected AlreadySigned on replay")
		}
	})

	t.Run("webhook defaults signed via", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByDocumentID(gomock.Any(), "42").Return(sentProposal(), nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSent).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.clients.EXPECT().GetByEmail(gomock.Any(), "org-1", "jane@acme.test").
			Return(entities.Client{ID: "client-1"}, nil)
		d.engagements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) { return e, nil },
		)
		d.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Metadata.SignedVia != "documenso_webhook" {
					t.Fatalf("expected documenso_webhook, got %q", o.Metadata.SignedVia)
				}
				return o, nil
			},
		)
		d.checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{}, nil)
		d.proposals.EXPECT().TransitionAndUpdate(gomock.Any(), gomock.Any(), entities.ProposalStatusSigned).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.ProposalStatus) (entities.Proposal, error) {
				return p, nil
			},
		)
		d.orgs.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organization{}, nil)

		if _, err := uc.HandleSignatureEvent(context.Background(), "42", SignatureInput{SignerName: "Jane"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("signed proposals are retained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		p := sentProposal()
		p.Status = entities.ProposalStatusSigned
		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(p, nil)

		err := uc.Delete(context.Background(), "org-1", "prop-1")
		if !errors.Is(err, ErrProposalStatusConflict) {
			t.Fatalf("expected ErrProposalStatusConflict, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newProposalUseCaseTest(ctrl)

		d.proposals.EXPECT().GetByID(gomock.Any(), "org-1", "prop-1").Return(sentProposal(), nil)
		d.proposals.EXPECT().SoftDelete(gomock.Any(), "org-1", "prop-1").
			Return(entities.Proposal{ID: "prop-1"}, nil)

		if err := uc.Delete(context.Background(), "org-1", "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
