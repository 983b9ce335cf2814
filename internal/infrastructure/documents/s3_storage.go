package documents

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultProposalsBucket = "proposals"

// S3DocumentStorage stores rendered proposal PDFs in S3 at
// {org_id}/{proposal_id}.pdf. Re-sending a proposal overwrites the object in
// place, so the URL stays stable and no duplicates accumulate.
type S3DocumentStorage struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewS3DocumentStorage(client *s3.Client) *S3DocumentStorage {
	bucket := getenvDefault("PROPOSALS_BUCKET", defaultProposalsBucket)
	publicURL := strings.TrimRight(os.Getenv("PROPOSALS_PUBLIC_URL"), "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, getenvDefault("AWS_REGION", "us-east-1"))
	}
	return &S3DocumentStorage{
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		publicURL: publicURL,
	}
}

func (s *S3DocumentStorage) UploadProposalPDF(ctx context.Context, orgID, proposalID string, pdf []byte) (string, error) {
	key := fmt.Sprintf("%s/%s.pdf", orgID, proposalID)
	log.Printf("[documents][storage] upload start bucket=%s key=%s pdf_len=%d", s.bucket, key, len(pdf))

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Printf("[documents][storage] upload failed key=%s err=%v", key, err)
		return "", err
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, key)
	log.Printf("[documents][storage] upload success key=%s url=%s", key, url)
	return url, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
