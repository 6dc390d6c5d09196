package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

// S3API is the part of the S3 client used by the archiver.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Archiver struct {
	client S3API
	bucket string
	prefix string
	logger logger.Logger
}

// NewS3Client builds an S3 client for the export bucket region using the
// default AWS credential chain.
func NewS3Client(ctx context.Context, settings config.ExportStorageSettings) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// NewS3Archiver creates an Archiver writing under settings.Prefix in settings.Bucket.
func NewS3Archiver(client S3API, settings config.ExportStorageSettings, logger logger.Logger) engagement.Archiver {
	prefix := strings.Trim(settings.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &s3Archiver{
		client: client,
		bucket: settings.Bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Archive uploads content and returns its s3:// URI.
func (a *s3Archiver) Archive(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	objectKey := a.prefix + key
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to S3: %w", err)
	}

	location := fmt.Sprintf("s3://%s/%s", a.bucket, objectKey)
	a.logger.Info("Archived export to ", location, " (", len(content), " bytes)")
	return location, nil
}
