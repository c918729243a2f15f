package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
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
	}, nil
}

// Upload writes the object at the exact path given and returns its public
// URL. Callers own path construction so image objects stay namespaced by
// product.
func (c *CloudStorageClient) Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(path)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, data); err != nil {
		return "", fmt.Errorf("failed to copy object to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return c.PublicURL(path), nil
}

// Delete removes the object a public URL points at. A URL that does not
// belong to this bucket is a precondition violation, not a remote failure.
func (c *CloudStorageClient) Delete(ctx context.Context, fileURL string) error {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("malformed storage URL: %s", fileURL)
	}

	objectName := fileURL[len(prefix):]
	if objectName == "" {
		return fmt.Errorf("malformed storage URL: %s", fileURL)
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, path)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
