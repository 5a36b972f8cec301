// Package backup uploads JSON snapshots of the stored letters to S3 compatible
// object storage.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/unspoken/internal/config"
	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// Snapshot is the document written for each export.
type Snapshot struct {
	ExportedAt time.Time       `json:"exported_at"`
	Count      int             `json:"count"`
	Letters    []models.Letter `json:"letters"`
}

type S3Exporter struct {
	config *config.Config
	now    func() time.Time
}

func NewS3Exporter(cfg *config.Config) *S3Exporter {
	return &S3Exporter{config: cfg, now: time.Now}
}

// StorageKey returns the object key for a snapshot taken at d.
func StorageKey(d time.Time) string {
	return fmt.Sprintf("letters/%04d/%02d/%02d/%v.json", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (e *S3Exporter) client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(e.config.S3Region),
	}
	// without explicit keys the default chain (env, shared config, IMDS) applies
	if e.config.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.S3AccessKey,
			e.config.S3SecretKey,
			"",
		)))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Export uploads items as one snapshot and returns the object key.
func (e *S3Exporter) Export(ctx context.Context, items []models.Letter) (string, error) {
	if items == nil {
		items = []models.Letter{}
	}
	now := e.now()

	body, err := json.MarshalIndent(Snapshot{
		ExportedAt: now,
		Count:      len(items),
		Letters:    items,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	client, err := e.client(ctx)
	if err != nil {
		return "", err
	}

	key := StorageKey(now)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.config.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s/%s: %w", e.config.S3Bucket, key, err)
	}

	return key, nil
}
