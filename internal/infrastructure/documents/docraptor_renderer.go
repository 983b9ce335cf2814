package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

var ErrMissingDocRaptorAPIKey = errors.New("missing DOCRAPTOR_API_KEY")

const docRaptorURL = "https://api.docraptor.com/docs"

// DocRaptorRenderer converts HTML to PDF via the DocRaptor API.
type DocRaptorRenderer struct {
	apiKey     string
	httpClient *http.Client
}

func NewDocRaptorRenderer(apiKey string) (*DocRaptorRenderer, error) {
	if apiKey == "" {
		log.Printf("[documents][docraptor] missing DOCRAPTOR_API_KEY")
		return nil, ErrMissingDocRaptorAPIKey
	}
	return &DocRaptorRenderer{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type docRaptorRequest struct {
	Test            bool   `json:"test"`
	DocumentType    string `json:"document_type"`
	DocumentContent string `json:"document_content"`
	Name            string `json:"name"`
}

func (r *DocRaptorRenderer) RenderPDF(ctx context.Context, html, filename string) ([]byte, error) {
	log.Printf("[documents][docraptor] render start name=%s html_len=%d", filename, len(html))

	body, err := json.Marshal(docRaptorRequest{
		Test:            isTestModeEnabled(),
		DocumentType:    "pdf",
		DocumentContent: html,
		Name:            filename,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, docRaptorURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.apiKey, "")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[documents][docraptor] render failed name=%s err=%v", filename, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[documents][docraptor] render failed name=%s status=%d body=%s", filename, resp.StatusCode, msg)
		return nil, fmt.Errorf("docraptor render failed: status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("[documents][docraptor] render success name=%s pdf_len=%d", filename, len(pdf))
	return pdf, nil
}

func isTestModeEnabled() bool {
	switch os.Getenv("DOCRAPTOR_TEST_MODE") {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
