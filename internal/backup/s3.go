package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config points the uploader at an S3-compatible bucket (AWS or MinIO).
type S3Config struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// newS3ClientFromConfig is a seam for testing client construction.
var newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
	return s3.NewFromConfig(cfg, optFns...)
}

// S3Uploader pushes export documents to a bucket so the checkpoint's data
// survives the terminal itself.
type S3Uploader struct {
	config S3Config
}

// NewS3Uploader returns an uploader for the given bucket configuration.
func NewS3Uploader(cfg S3Config) *S3Uploader {
	return &S3Uploader{config: cfg}
}

func (u *S3Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(u.config.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.AccessKey,
			u.config.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.config.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.config.BaseEndpoint)
		}
		o.UsePathStyle = u.config.BaseEndpoint != ""
	})
	return client, nil
}

// Upload stores the document under a timestamped key and returns the key.
func (u *S3Uploader) Upload(ctx context.Context, document []byte) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("caseta-%s.json", time.Now().UTC().Format("20060102-150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload backup: %w", err)
	}
	return key, nil
}
