package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	appcfg "facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps resource photos in a single bucket. Keys are opaque strings
// generated by the caller; PublicURL assumes the bucket is fronted by a public
// base URL (CDN or website endpoint).
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Store(ctx context.Context, cfg appcfg.BlobConfig) (*S3Store, error) {
	awsConfig, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}

	return &S3Store{
		client:        s3.NewFromConfig(awsConfig),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Store(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errs.Wrap(err, "failed to store blob")
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.Wrap(err, "failed to delete blob")
	}
	return nil
}

func (s *S3Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicBaseURL, key)
}
