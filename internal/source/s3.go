package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// Environment variables:
//   ALMANAC_S3_REGION=<region> (default us-east-1)
//   ALMANAC_S3_ENDPOINT=<url> (optional, for MinIO and other S3-compatible stores)
//   ALMANAC_S3_PATH_STYLE=true|false (default false)
//   AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

// ObjectGetter is the slice of the S3 API the opener needs. *s3.Client
// satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds explicit construction parameters for the S3 client.
type S3Config struct {
	Region    string
	Endpoint  string
	PathStyle bool
}

// IsS3 reports whether ref is an s3:// URI.
func IsS3(ref string) bool {
	return strings.HasPrefix(ref, s3Scheme)
}

// ParseS3URI splits "s3://bucket/key" into its bucket and key.
func ParseS3URI(ref string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 URI: %q", ref)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 URI %q must be of the form s3://bucket/key", ref)
	}
	return bucket, key, nil
}

// NewS3Client builds an S3 client from cfg on top of the default AWS
// credential chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewS3ClientFromEnv constructs an S3 client from process environment.
func NewS3ClientFromEnv(ctx context.Context) (ObjectGetter, error) {
	client, err := NewS3Client(ctx, S3Config{
		Region:    os.Getenv("ALMANAC_S3_REGION"),
		Endpoint:  os.Getenv("ALMANAC_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("ALMANAC_S3_PATH_STYLE"), "true"),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func getObject(ctx context.Context, client ObjectGetter, bucket, key string) (io.ReadCloser, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}
