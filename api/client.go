// Package api carries requests built by the channel packages to the remote
// service and turns responses into typed values or structured errors.
package api

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/infobip-go/configuration"
)

// Version is reported in the User-Agent header.
const Version = "0.1.0"

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 1 << 20
)

// HTTPClient abstracts the http.Client Do method for easier testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport. Timeouts, proxies and TLS belong to
// the supplied client.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for exchange diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBodyLimit caps how many response bytes are read.
func WithBodyLimit(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBodyBytes = limit
		}
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client performs exchanges with the remote API. It holds no per-call state
// and is safe for concurrent use.
type Client struct {
	baseURL       string
	authorization string
	httpClient    HTTPClient
	logger        zerolog.Logger
	maxBodyBytes  int64
	userAgent     string
	metrics       *Metrics
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg configuration.Configuration, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:       strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		authorization: cfg.Authorization(),
		httpClient:    &http.Client{Timeout: defaultTimeout},
		maxBodyBytes:  defaultMaxBodyBytes,
		userAgent:     "infobip-go/" + Version,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if reflect.ValueOf(c.logger).IsZero() {
		c.logger = zerolog.Nop()
	}
	return c, nil
}

// BaseURL returns the normalised endpoint root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewMessageID returns a random identifier suitable for the optional
// messageId and bulkId fields, letting callers correlate reports with sends.
func NewMessageID() string {
	return uuid.NewString()
}
