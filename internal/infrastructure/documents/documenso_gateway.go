package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"service_engine_x/internal/usecase/interfaces"
)

var ErrMissingDocumensoAPIKey = errors.New("missing DOCUMENSO_API_KEY")

const defaultDocumensoURL = "https://app.documenso.com"

// DocumensoGateway registers proposal PDFs with Documenso for e-signature.
// The flow is: create document with one SIGNER recipient, place a signature
// field on page 1, then activate without sending provider email (the signing
// token is embedded in our own client-facing page instead).
type DocumensoGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ISignatureGateway = (*DocumensoGateway)(nil)

func NewDocumensoGateway(apiKey, baseURL string) (*DocumensoGateway, error) {
	if apiKey == "" {
		log.Printf("[documents][documenso] missing DOCUMENSO_API_KEY")
		return nil, ErrMissingDocumensoAPIKey
	}
	if baseURL == "" {
		baseURL = defaultDocumensoURL
	}
	// Strip /api/v1 or /api/v2 if configured with an API path.
	baseURL = strings.NewReplacer("/api/v1", "", "/api/v2", "").Replace(strings.TrimRight(baseURL, "/"))

	return &DocumensoGateway{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type documensoRecipient struct {
	ID           int    `json:"id"`
	Token        string `json:"token"`
	SigningToken string `json:"signingToken"`
}

type documensoDocument struct {
	ID         json.Number          `json:"id"`
	DocumentID json.Number          `json:"documentId"`
	Recipients []documensoRecipient `json:"recipients"`
}

func (d documensoDocument) documentID() string {
	if d.DocumentID.String() != "" {
		return d.DocumentID.String()
	}
	return d.ID.String()
}

func (r documensoRecipient) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.SigningToken
}

func (g *DocumensoGateway) CreateSigningRequest(ctx context.Context, req interfaces.SigningRequest) (interfaces.SigningDocument, error) {
	log.Printf("[documents][documenso] create start title=%q recipient=%s", req.Title, req.RecipientEmail)

	doc, err := g.createDocument(ctx, req)
	if err != nil {
		return interfaces.SigningDocument{}, err
	}

	documentID := doc.documentID()
	signingToken := ""
	recipientID := 0
	if len(doc.Recipients) > 0 {
		signingToken = doc.Recipients[0].token()
		recipientID = doc.Recipients[0].ID
	}

	// Some Documenso versions omit the token from the create response.
	if signingToken == "" {
		detail, err := g.getDocument(ctx, documentID)
		if err == nil && len(detail.Recipients) > 0 {
			signingToken = detail.Recipients[0].token()
			recipientID = detail.Recipients[0].ID
		}
	}

	if recipientID != 0 {
		if err := g.addSignatureField(ctx, documentID, recipientID); err != nil {
			log.Printf("[documents][documenso] add field failed document_id=%s err=%v", documentID, err)
		}
	}

	if err := g.activateDocument(ctx, documentID); err != nil {
		log.Printf("[documents][documenso] activate failed document_id=%s err=%v", documentID, err)
		return interfaces.SigningDocument{}, err
	}

	log.Printf("[documents][documenso] create success document_id=%s", documentID)
	return interfaces.SigningDocument{DocumentID: documentID, SigningToken: signingToken}, nil
}

func (g *DocumensoGateway) createDocument(ctx context.Context, req interfaces.SigningRequest) (documensoDocument, error) {
	payload := map[string]any{
		"title": req.Title,
		"recipients": []map[string]any{
			{
				"email":        req.RecipientEmail,
				"name":         req.RecipientName,
				"role":         "SIGNER",
				"signingOrder": 1,
			},
		},
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return documensoDocument{}, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return documensoDocument{}, err
	}
	if _, err := fw.Write(req.PDF); err != nil {
		return documensoDocument{}, err
	}
	if err := mw.WriteField("payload", string(payloadJSON)); err != nil {
		return documensoDocument{}, err
	}
	if err := mw.Close(); err != nil {
		return documensoDocument{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/v2/document/create", &body)
	if err != nil {
		return documensoDocument{}, err
	}
	httpReq.Header.Set("Authorization", g.apiKey)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return documensoDocument{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return documensoDocument{}, fmt.Errorf("documenso upload failed: %d - %s", resp.StatusCode, msg)
	}

	var doc documensoDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return documensoDocument{}, err
	}
	return doc, nil
}

func (g *DocumensoGateway) getDocument(ctx context.Context, documentID string) (documensoDocument, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/v1/documents/%s", g.baseURL, documentID), nil)
	if err != nil {
		return documensoDocument{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return documensoDocument{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return documensoDocument{}, fmt.Errorf("documenso get document failed: status %d", resp.StatusCode)
	}

	var doc documensoDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return documensoDocument{}, err
	}
	return doc, nil
}

func (g *DocumensoGateway) addSignatureField(ctx context.Context, documentID string, recipientID int) error {
	return g.postJSON(ctx, fmt.Sprintf("%s/api/v1/documents/%s/fields", g.baseURL, documentID), map[string]any{
		"type":        "SIGNATURE",
		"recipientId": recipientID,
		"pageNumber":  1,
		"pageX":       100,
		"pageY":       650,
		"pageWidth":   200,
		"pageHeight":  60,
	})
}

func (g *DocumensoGateway) activateDocument(ctx context.Context, documentID string) error {
	return g.postJSON(ctx, fmt.Sprintf("%s/api/v1/documents/%s/send", g.baseURL, documentID), map[string]any{
		"sendEmail": false,
	})
}

func (g *DocumensoGateway) postJSON(ctx context.Context, url string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("documenso call failed: %s status %d", url, resp.StatusCode)
	}
	return nil
}
