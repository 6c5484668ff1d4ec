package publish

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	bferrors "github.com/blockforge-dev/blockforge/internal/errors"
	"github.com/blockforge-dev/blockforge/pkg/element"
	"github.com/blockforge-dev/blockforge/pkg/serialize"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures an S3 publisher.
type Config struct {
	// Bucket is the destination bucket. Required.
	Bucket string

	// Prefix is prepended to every object key (e.g. "site/").
	Prefix string

	// ContentType for published objects
	// (default "text/html; charset=utf-8").
	ContentType string

	// CacheControl header stored on published objects. Empty means none.
	CacheControl string
}

// Publisher writes rendered documents to an S3 bucket.
type Publisher struct {
	client ObjectPutter
	config Config
	logger *slog.Logger
}

// New creates a publisher. The client is typically *s3.Client.
func New(client ObjectPutter, config Config) *Publisher {
	if config.ContentType == "" {
		config.ContentType = "text/html; charset=utf-8"
	}
	return &Publisher{
		client: client,
		config: config,
		logger: slog.Default().With("component", "publish"),
	}
}

// Publish uploads markup under the given key and returns the full
// object key.
func (p *Publisher) Publish(ctx context.Context, key, markup string) (string, error) {
	if p.config.Bucket == "" {
		return "", bferrors.New("E202")
	}

	fullKey := p.config.Prefix + key
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.config.Bucket),
		Key:         aws.String(fullKey),
		Body:        strings.NewReader(markup),
		ContentType: aws.String(p.config.ContentType),
		Metadata: map[string]string{
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if p.config.CacheControl != "" {
		input.CacheControl = aws.String(p.config.CacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", bferrors.New("E201").Wrap(err)
	}

	p.logger.Info("document published",
		"bucket", p.config.Bucket,
		"key", fullKey,
		"bytes", len(markup))
	return fullKey, nil
}

// PublishNode renders an element tree and uploads the result.
func (p *Publisher) PublishNode(ctx context.Context, key string, node *element.Node) (string, error) {
	return p.Publish(ctx, key, serialize.RenderToString(node))
}

// PublishDocument renders a full HTML page and uploads it.
func (p *Publisher) PublishDocument(ctx context.Context, key string, doc serialize.Document) (string, error) {
	var sb strings.Builder
	s := serialize.New(serialize.Config{})
	if err := s.RenderDocument(&sb, doc); err != nil {
		return "", bferrors.New("E201").Wrap(err)
	}
	return p.Publish(ctx, key, sb.String())
}
