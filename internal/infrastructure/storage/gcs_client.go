package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient wraps the GCS bucket holding verification documents.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

// UploadDocument stores a KYC document under private/verification/ and
// returns the object path recorded on the VerificationDocument.
func (c *CloudStorageClient) UploadDocument(ctx context.Context, file io.Reader, contentType, userID string) (string, error) {
	objectPath := fmt.Sprintf("private/verification/%s/%s-%s", userID, uuid.New().String(), time.Now().Format("20060102150405"))

	switch contentType {
	case "image/jpeg", "image/jpg":
		objectPath += ".jpg"
	case "image/png":
		objectPath += ".png"
	case "application/pdf":
		objectPath += ".pdf"
	default:
		objectPath += ".bin"
	}

	obj := c.client.Bucket(c.bucketName).Object(objectPath)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return objectPath, nil
}

// SignedURL returns a short-lived read URL so a reviewer can open a
// document without the bucket being public.
func (c *CloudStorageClient) SignedURL(objectPath string, expiry time.Duration) (string, error) {
	url, err := c.client.Bucket(c.bucketName).SignedURL(objectPath, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expiry),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for %s: %v", objectPath, err)
	}
	return url, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
