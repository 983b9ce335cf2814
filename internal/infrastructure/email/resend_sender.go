package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"service_engine_x/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const resendURL = "https://api.resend.com/emails"

// ResendSender delivers proposal notifications through the Resend API.
// Callers treat failures as non-fatal; a lost email never blocks the
// proposal workflow.
type ResendSender struct {
	apiKey     string
	from       string
	httpClient *http.Client
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey string) (*ResendSender, error) {
	if apiKey == "" {
		log.Printf("[email][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "proposals@notifications.localhost"
	}
	return &ResendSender{
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) SendProposalEmail(ctx context.Context, email interfaces.ProposalEmail) error {
	subject := fmt.Sprintf("%s sent you a proposal", email.OrgName)
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>%s has sent you a proposal for a total of $%s.</p>
<p><a href="%s">Review and sign the proposal</a></p>`,
		html.EscapeString(email.ContactName),
		html.EscapeString(email.OrgName),
		html.EscapeString(email.Total),
		email.SigningURL,
	)
	return s.send(ctx, []string{email.ToEmail}, subject, body)
}

func (s *ResendSender) SendProposalSignedEmail(ctx context.Context, email interfaces.ProposalSignedEmail) error {
	company := email.CompanyName
	if company == "" {
		company = email.SignerName
	}
	subject := fmt.Sprintf("Proposal signed by %s", company)
	body := fmt.Sprintf(
		`<p>%s signed proposal %s for a total of $%s.</p>
<p><a href="%s">Download the signed PDF</a></p>`,
		html.EscapeString(email.SignerName),
		html.EscapeString(email.ProposalID),
		html.EscapeString(email.Total),
		email.SignedPDFURL,
	)
	return s.send(ctx, email.ToEmails, subject, body)
}

func (s *ResendSender) send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}
	log.Printf("[email][resend] send start to=%s subject=%q", strings.Join(to, ","), subject)

	payload, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("[email][resend] send failed subject=%q err=%v", subject, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("[email][resend] send failed subject=%q status=%d body=%s", subject, resp.StatusCode, msg)
		return fmt.Errorf("resend send failed: status %d", resp.StatusCode)
	}

	log.Printf("[email][resend] send success to=%s", strings.Join(to, ","))
	return nil
}
