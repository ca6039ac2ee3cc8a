// Package storage provides the direct-to-bucket upload backend. It writes
// photos straight into the album bucket with the same key scheme and object
// metadata the gateway PUT proxy produces, so the downstream indexer sees no
// difference.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/NitinMohan03/photo-album-cli/internal/client/config"
	"github.com/NitinMohan03/photo-album-cli/internal/client/models"
	"github.com/NitinMohan03/photo-album-cli/internal/common"
	"github.com/NitinMohan03/photo-album-cli/internal/logging"
	"github.com/NitinMohan03/photo-album-cli/internal/netx"
)

// The indexer reads custom labels from this object metadata key. S3
// lowercases metadata keys, so the header spelling does not survive.
const metadataLabelsKey = "customlabels"

// keyPrefix matches the gateway's photo path, keeping both upload modes
// interchangeable within one bucket.
const keyPrefix = "photos/"

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader satisfies api.Uploader by calling PutObject directly.
type S3Uploader struct {
	client s3API
	bucket string
	log    logging.Logger
}

// New builds an S3Uploader from the client configuration. Static credentials
// and a custom base endpoint support MinIO-style deployments.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
	})

	return NewWithClient(client, cfg.S3Bucket, log), nil
}

// NewWithClient injects the S3 API, for tests and custom wiring.
func NewWithClient(client s3API, bucket string, log logging.Logger) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, log: log}
}

func (u *S3Uploader) UploadPhoto(ctx context.Context, task models.UploadTask, progress netx.ProgressFunc) error {
	body := netx.NewProgressReader(bytes.NewReader(task.Data), int64(len(task.Data)), progress)

	in := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(keyPrefix + task.Key),
		Body:          body,
		ContentType:   aws.String(task.ContentType),
		ContentLength: aws.Int64(int64(len(task.Data))),
	}
	if task.Label != "" {
		in.Metadata = map[string]string{metadataLabelsKey: task.Label}
	}

	u.log.Debug(ctx, "putting object", "bucket", u.bucket, "key", task.Key, "size", len(task.Data))

	if _, err := u.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("%w: put object %s: %v", common.ErrUploadFailed, task.Key, err)
	}
	return nil
}
