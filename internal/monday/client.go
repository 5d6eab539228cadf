package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Defaults for the monday.com v2 API. The API version is a calendar version
// pinned to the fragment shapes the query builder emits; bumping it is a
// deliberate change, not configuration drift.
const (
	DefaultEndpoint   = "https://api.monday.com/v2"
	DefaultAPIVersion = "2026-01"
	DefaultPageSize   = 50
)

// Client is a high-level client for the monday.com GraphQL API.
type Client struct {
	endpoint   string
	token      string
	apiVersion string
	pageSize   int
	transport  Transport
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	endpoint   string
	apiVersion string
	pageSize   int
	httpClient *http.Client
	transport  Transport
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a Client authenticating with the given API token. The token
// is sent as an Authorization header on every request.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("monday: token is required")
	}

	cfg := &clientConfig{
		endpoint:   DefaultEndpoint,
		apiVersion: DefaultAPIVersion,
		pageSize:   DefaultPageSize,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	transport := cfg.transport
	if transport == nil {
		httpClient := cfg.httpClient
		if httpClient == nil {
			httpClient = &http.Client{}
		}
		if cfg.timeout > 0 {
			httpClient.Timeout = cfg.timeout
		}
		transport = &httpTransport{endpoint: cfg.endpoint, client: httpClient}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		endpoint:   cfg.endpoint,
		token:      token,
		apiVersion: cfg.apiVersion,
		pageSize:   cfg.pageSize,
		transport:  transport,
		logger:     logger,
	}, nil
}

// WithEndpoint overrides the API endpoint (e.g. for a regional host or a
// test server).
func WithEndpoint(url string) Option {
	return func(cfg *clientConfig) error {
		if url == "" {
			return fmt.Errorf("monday: endpoint must not be empty")
		}
		cfg.endpoint = url
		return nil
	}
}

// WithAPIVersion pins a different calendar API version.
func WithAPIVersion(version string) Option {
	return func(cfg *clientConfig) error {
		cfg.apiVersion = version
		return nil
	}
}

// WithPageSize sets the page size requested by list operations.
func WithPageSize(n int) Option {
	return func(cfg *clientConfig) error {
		if n <= 0 {
			return fmt.Errorf("monday: page size must be positive")
		}
		cfg.pageSize = n
		return nil
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithTransport substitutes the whole transport layer. Overrides
// WithHTTPClient and WithTimeout.
func WithTransport(t Transport) Option {
	return func(cfg *clientConfig) error {
		cfg.transport = t
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// APIVersion returns the calendar version attached to every request.
func (c *Client) APIVersion() string { return c.apiVersion }

// do executes one GraphQL query through the transport and decodes the data
// payload into dst. The configured API-Version and Authorization headers are
// attached verbatim to every request.
func (c *Client) do(ctx context.Context, operation string, q Query, dst any) error {
	headers := map[string]string{
		"Authorization": c.token,
		"API-Version":   c.apiVersion,
	}

	c.logger.InfoContext(ctx, "API request", "operation", operation, "endpoint", c.endpoint)

	data, err := c.transport.Execute(ctx, q.Document, q.Variables, headers)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	c.logger.DebugContext(ctx, "API response", "operation", operation, "bytes", len(data))

	if dst != nil {
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("%s: decode data: %w", operation, err)
		}
	}
	return nil
}
