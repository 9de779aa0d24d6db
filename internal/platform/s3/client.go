package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultLinkExpiry is how long a presigned asset link stays valid.
const DefaultLinkExpiry = 15 * time.Minute

// ErrBucketRequired is returned when no bucket name is given.
var ErrBucketRequired = errors.New("bucket name is required")

// Client presigns object URLs for a region.
type Client struct {
	presign *s3.PresignClient
	region  string
}

// NewClient creates a presigning client from an SDK configuration.
func NewClient(cfg aws.Config) *Client {
	client := s3.NewFromConfig(cfg)
	return &Client{
		presign: s3.NewPresignClient(client),
		region:  cfg.Region,
	}
}

// Region returns the region links are signed for.
func (c *Client) Region() string {
	return c.region
}

// AssetURL returns a presigned GET URL for key in bucket. An expiry of zero
// uses DefaultLinkExpiry.
func (c *Client) AssetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if bucket == "" {
		return "", ErrBucketRequired
	}
	if expiry <= 0 {
		expiry = DefaultLinkExpiry
	}

	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}
