package api

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/auth"
)

// DefaultPaginationTimeout bounds GetAll* calls whose context has no deadline.
const DefaultPaginationTimeout = 10 * time.Minute

// RequestObserver is notified after every HTTP attempt.
type RequestObserver interface {
	ObserveRequest(endpoint string, status int, duration time.Duration, err error)
}

// Client provides access to the Kalshi REST API.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	httpClient *http.Client
	logger     *slog.Logger
	observer   RequestObserver

	maxRetries   int
	retryBackoff time.Duration

	// Minimum spacing between consecutive requests, shared by all callers.
	requestDelay time.Duration
	paceMu       sync.Mutex
	nextRequest  time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. creds may be nil for public endpoints.
func NewClient(baseURL string, creds *auth.Credentials, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration. Negative values are treated as 0.
func WithRetries(retries int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max(retries, 0)
		c.retryBackoff = max(backoff, 0)
	}
}

// WithRequestDelay sets the minimum delay between consecutive requests.
func WithRequestDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.requestDelay = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithObserver registers a RequestObserver, typically a metrics recorder.
func WithObserver(o RequestObserver) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// Authenticated reports whether requests are signed.
func (c *Client) Authenticated() bool {
	return c.creds != nil
}
