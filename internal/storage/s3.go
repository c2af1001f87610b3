package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"storefront/internal/config"
)

// Uploader stores a file stream and returns its publicly resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader, folder, filename, contentType string) (string, error)
}

// S3PutObjectAPI is the slice of the S3 client the uploader needs.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader implements Uploader against an S3 bucket, preferring a
// CloudFront domain for the returned URL when one is configured.
type S3Uploader struct {
	client    S3PutObjectAPI
	bucket    string
	region    string
	cdnDomain string
	log       *slog.Logger
}

// NewS3Uploader creates an uploader for the configured bucket.
func NewS3Uploader(client S3PutObjectAPI, cfg config.AWSConfig, log *slog.Logger) *S3Uploader {
	return &S3Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		region:    cfg.Region,
		cdnDomain: cfg.CloudFrontDomain,
		log:       log,
	}
}

// Upload stores the stream under <folder>/<token>_<sanitized-filename> with
// the declared content type and returns the public URL.
func (u *S3Uploader) Upload(ctx context.Context, body io.Reader, folder, filename, contentType string) (string, error) {
	key := objectKey(folder, filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		u.log.Error("s3 upload failed", "bucket", u.bucket, "key", key, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := u.publicURL(key)
	u.log.Info("uploaded object", "key", key, "url", url)
	return url, nil
}

func (u *S3Uploader) publicURL(key string) string {
	if u.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func objectKey(folder, filename string) string {
	folder = strings.Trim(folder, "/")
	return fmt.Sprintf("%s/%s_%s", folder, uuid.New().String(), sanitizeFilename(filename))
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename reduces a client-supplied filename to its base name and
// strips characters that could inject path segments into the object key.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = unsafeKeyChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "file"
	}
	return name
}
