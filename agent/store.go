package agent

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// S3PutObjectAPI is the subset of the S3 client the store uses.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes result files into a single bucket, keyed by file path.
// Metadata is attached as S3 object metadata.
type S3Store struct {
	client S3PutObjectAPI
	bucket string
}

// NewS3Store returns a store writing to bucket through client.
func NewS3Store(client S3PutObjectAPI, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// NewS3StoreFromConfig builds an S3Store with a default SDK client.
func NewS3StoreFromConfig(ctx context.Context, bucket string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for S3: %w", err)
	}
	return NewS3Store(s3.NewFromConfig(cfg), bucket), nil
}

// PutFile uploads data under the object key derived from path. A leading
// slash is stripped so absolute-looking paths don't produce empty key
// segments.
func (s *S3Store) PutFile(ctx context.Context, path string, data []byte, metadata map[string]string) error {
	key := strings.TrimPrefix(path, "/")

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to put result file [bucket=%s, key=%s]: %w", s.bucket, key, err)
	}

	log.Debugf("wrote result file [bucket=%s, key=%s, bytes=%d]", s.bucket, key, len(data))
	return nil
}
