package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rohanthewiz/urlresolve/consts"
)

var ErrNoObjectStore = errors.New("routes: no object store configured for s3 source")

// ObjectGetter is the part of the S3 client used to fetch route files.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client returns an S3 client for region. Credentials come from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN when set;
// otherwise requests are anonymous, which is enough for public buckets.
func NewS3Client(region string) *s3.Client {
	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}

	if id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); id != "" && secret != "" {
		token := os.Getenv("AWS_SESSION_TOKEN")
		creds = aws.NewCredentialsCache(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{AccessKeyID: id, SecretAccessKey: secret, SessionToken: token, Source: "env"}, nil
			}))
	}

	return s3.New(s3.Options{
		Region:      region,
		Credentials: creds,
	})
}

// Loader reads route files from the local filesystem or from S3.
type Loader struct {
	// S3 serves s3://bucket/key sources. Nil disables them.
	S3 ObjectGetter
}

// IsS3 reports whether source names an S3 object.
func IsS3(source string) bool {
	return strings.HasPrefix(source, consts.SchemeS3)
}

// SplitS3 splits s3://bucket/key into bucket and key.
func SplitS3(source string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(source, consts.SchemeS3)
	bucket, key, ok := strings.Cut(rest, consts.PathSep)
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("routes: bad s3 source %q, want s3://bucket/key", source)
	}
	return bucket, key, nil
}

// Read returns the raw contents of source.
func (l *Loader) Read(ctx context.Context, source string) ([]byte, error) {
	if !IsS3(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("routes: read %s: %w", source, err)
		}
		return data, nil
	}

	if l.S3 == nil {
		return nil, ErrNoObjectStore
	}
	bucket, key, err := SplitS3(source)
	if err != nil {
		return nil, err
	}

	out, err := l.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("routes: get %s: %w", source, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("routes: read %s: %w", source, err)
	}
	return data, nil
}

// Load reads and parses source.
func (l *Loader) Load(ctx context.Context, source string) (*File, error) {
	data, err := l.Read(ctx, source)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return f, nil
}
