package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rental_quote_app_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArchiveProvider stores rendered quote PDFs for later retrieval. Archival is
// best-effort: a failed archive is logged and never fails the render request.
type ArchiveProvider interface {
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error) // returns URL (may be empty)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
	IsConfigured() bool
}

// Archive is the global archive instance
var Archive ArchiveProvider

// InitializeArchive sets up the archive provider based on configuration.
// With R2 credentials present the bucket is used; otherwise rendered quotes
// are archived under the local archive directory.
func InitializeArchive(cfg *config.Config) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" {
		r2, err := NewR2Archive(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 archive: %v. Falling back to local archive.", err)
			Archive = NewLocalArchive(cfg.ArchiveDir)
			log.Println("Quote archive ready (local filesystem - fallback)")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err = r2.client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: &cfg.R2BucketName,
		})
		if err != nil {
			log.Printf("[WARNING] R2 bucket connection test failed: %v. Falling back to local archive.", err)
			Archive = NewLocalArchive(cfg.ArchiveDir)
			log.Println("Quote archive ready (local filesystem - fallback)")
			return
		}

		Archive = r2
		log.Printf("Quote archive ready (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
	} else {
		Archive = NewLocalArchive(cfg.ArchiveDir)
		log.Printf("Quote archive ready (local filesystem - path: %s)", cfg.ArchiveDir)
	}
}

// QuoteArchiveKey builds the storage key for a rendered quote, grouped by
// month so buckets stay browsable.
func QuoteArchiveKey(renderedAt time.Time, outputName string) string {
	return fmt.Sprintf("quotes/%s/%s", renderedAt.UTC().Format("2006-01"), outputName)
}

// R2Archive implements ArchiveProvider on Cloudflare R2's S3 API.
type R2Archive struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

// NewR2Archive creates an R2-backed archive provider.
func NewR2Archive(cfg *config.Config) (*R2Archive, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(
		cfg.R2AccessKeyID,
		cfg.R2SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Archive{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

// IsConfigured returns true if R2 is properly configured
func (r *R2Archive) IsConfigured() bool {
	return r.client != nil && r.bucket != ""
}

// Put uploads a rendered quote to R2.
func (r *R2Archive) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return r.publicURLFor(key), nil
}

// Get retrieves an archived quote from R2.
func (r *R2Archive) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}
	return result.Body, contentType, nil
}

// Delete removes an archived quote from R2.
func (r *R2Archive) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

// GetSignedURL generates a presigned URL for temporary access.
func (r *R2Archive) GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	presignedReq, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return presignedReq.URL, nil
}

func (r *R2Archive) publicURLFor(key string) string {
	if r.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), key)
	}
	// No public URL configured - caller should use GetSignedURL
	return ""
}

// LocalArchive implements ArchiveProvider on the local filesystem.
type LocalArchive struct {
	baseDir string
}

// NewLocalArchive creates a filesystem-backed archive provider.
func NewLocalArchive(baseDir string) *LocalArchive {
	return &LocalArchive{baseDir: baseDir}
}

// IsConfigured returns true (local archive is always available)
func (l *LocalArchive) IsConfigured() bool {
	return true
}

// Put saves a rendered quote under the archive directory.
func (l *LocalArchive) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	fullPath := filepath.Join(l.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return "/" + fullPath, nil
}

// Get retrieves an archived quote from the filesystem.
func (l *LocalArchive) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath := filepath.Join(l.baseDir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	contentType := "application/octet-stream"
	if strings.ToLower(filepath.Ext(key)) == ".pdf" {
		contentType = "application/pdf"
	}
	return file, contentType, nil
}

// Delete removes an archived quote from the filesystem.
func (l *LocalArchive) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(l.baseDir, key)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetSignedURL returns the plain local path; filesystem archives have no
// expiring access.
func (l *LocalArchive) GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "/" + filepath.Join(l.baseDir, key), nil
}
