package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const S3Scheme = "s3"

// S3 reads objects addressed as s3://bucket/key.
type S3 struct {
	Client s3iface.S3API
}

// NewS3 builds an S3 source from the shared AWS config (env, profile, region).
func NewS3() (*S3, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session, %w", err)
	}
	return &S3{Client: s3.New(sess)}, nil
}

func (s *S3) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// ParseS3Path splits s3://bucket/key into its parts.
func ParseS3Path(path string) (bucket, key string, err error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != S3Scheme {
		return "", "", fmt.Errorf("not an s3 path: %q", path)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("s3 path needs bucket and key: %q", path)
	}
	return u.Host, key, nil
}

func IsS3Path(path string) bool {
	return strings.HasPrefix(path, S3Scheme+"://")
}
