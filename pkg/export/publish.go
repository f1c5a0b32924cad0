package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/woby-dev/woby/pkg/render"
)

// Publisher renders pages and uploads them to a bucket.
type Publisher struct {
	client   PutObjectAPI
	bucket   string
	prefix   string
	renderer *render.Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the key prefix. Leading and trailing slashes are dropped.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = strings.Trim(prefix, "/")
	}
}

// WithPretty renders indented HTML.
func WithPretty(pretty bool) Option {
	return func(p *Publisher) {
		p.renderer = render.NewRenderer(render.RendererConfig{Pretty: pretty, SkipComments: true})
	}
}

// WithLogger sets the logger.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the time source used for snapshot keys.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Publisher writing to bucket.
func New(client PutObjectAPI, bucket string, opts ...Option) (*Publisher, error) {
	if client == nil {
		return nil, fmt.Errorf("export: nil client")
	}
	if bucket == "" {
		return nil, fmt.Errorf("export: bucket is required")
	}
	p := &Publisher{
		client:   client,
		bucket:   bucket,
		renderer: render.NewRenderer(render.RendererConfig{SkipComments: true}),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Key returns the timestamped key of a snapshot.
func (p *Publisher) Key(name string, at time.Time) string {
	return path.Join(p.prefix, name, at.UTC().Format("20060102T150405Z")+".html")
}

// IndexKey returns the stable key of the latest snapshot of name.
func (p *Publisher) IndexKey(name string) string {
	return path.Join(p.prefix, name, "index.html")
}

// Publish renders page and uploads it under the timestamped key and the
// index key. It returns the timestamped key.
func (p *Publisher) Publish(ctx context.Context, name string, page render.PageData) (string, error) {
	if name == "" || strings.Contains(name, "..") {
		return "", fmt.Errorf("export: invalid snapshot name %q", name)
	}

	var buf bytes.Buffer
	if err := p.renderer.RenderPage(&buf, page); err != nil {
		return "", fmt.Errorf("export: render %s: %w", name, err)
	}

	at := p.now()
	key := p.Key(name, at)
	for _, k := range []string{key, p.IndexKey(name)} {
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(k),
			Body:         bytes.NewReader(buf.Bytes()),
			ContentType:  aws.String("text/html; charset=utf-8"),
			CacheControl: aws.String("no-cache"),
			Metadata: map[string]string{
				"snapshot":    name,
				"rendered-at": at.UTC().Format(time.RFC3339),
			},
		})
		if err != nil {
			return "", fmt.Errorf("export: put s3://%s/%s: %w", p.bucket, k, err)
		}
	}

	p.logger.Info("snapshot published", "bucket", p.bucket, "key", key, "bytes", buf.Len())
	return key, nil
}
