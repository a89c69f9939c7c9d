package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter is the part of the S3 client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	// Bucket is the destination bucket name.
	Bucket string

	// Prefix is prepended to every object key.
	Prefix string

	// CacheControl is applied to every uploaded object when set.
	CacheControl string

	// Logger receives upload logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result summarizes one publish run.
type Result struct {
	// DeployID identifies the run; it is attached to every object.
	DeployID string

	// Files is the number of objects uploaded.
	Files int

	// Bytes is the total payload size.
	Bytes int64

	// Keys lists the uploaded object keys in upload order.
	Keys []string

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Publisher uploads rendered output to a bucket.
type Publisher struct {
	client ObjectPutter
	opts   Options
	log    *slog.Logger
}

// New creates a Publisher using the given client.
func New(client ObjectPutter, opts Options) *Publisher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		opts:   opts,
		log:    logger,
	}
}

// NewClient builds an S3 client for the given region with credentials from
// the conventional environment variables.
func NewClient(region string) *s3.Client {
	creds := aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}, nil
	})

	return s3.New(s3.Options{
		Region:      region,
		Credentials: creds,
	})
}

// Publish uploads every file under dir to the bucket. Keys mirror the
// directory layout relative to dir, below the configured prefix.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()
	deployID := uuid.NewString()
	publishedAt := start.UTC().Format(time.RFC3339)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("nothing to publish in %s", dir)
	}
	sort.Strings(files)

	res := &Result{DeployID: deployID}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return nil, err
		}
		key := p.objectKey(rel)

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		input := &s3.PutObjectInput{
			Bucket:      aws.String(p.opts.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentTypeFor(rel)),
			Metadata: map[string]string{
				"deploy-id":    deployID,
				"published-at": publishedAt,
			},
		}
		if p.opts.CacheControl != "" {
			input.CacheControl = aws.String(p.opts.CacheControl)
		}

		if _, err := p.client.PutObject(ctx, input); err != nil {
			return nil, fmt.Errorf("upload %s: %w", key, err)
		}

		p.log.Debug("uploaded", "key", key, "bytes", len(data))
		res.Files++
		res.Bytes += int64(len(data))
		res.Keys = append(res.Keys, key)
	}

	res.Duration = time.Since(start)
	return res, nil
}

// objectKey maps a dir-relative file path to its object key.
func (p *Publisher) objectKey(rel string) string {
	key := filepath.ToSlash(rel)
	if p.opts.Prefix != "" {
		key = strings.TrimSuffix(p.opts.Prefix, "/") + "/" + key
	}
	return key
}

// contentTypeFor maps a file name to its MIME type, defaulting to
// octet-stream for unknown extensions.
func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
