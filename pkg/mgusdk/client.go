package mgusdk

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/slogx"
)

// DefaultTimeout bounds a single HTTP round trip when no other timeout is set.
const DefaultTimeout = 30 * time.Second

// Credentials identify this integration to the provider.
type Credentials struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// complete reports whether all three values are set.
func (c Credentials) complete() bool {
	return c.BaseURL != "" && c.ClientID != "" && c.ClientSecret != ""
}

// String masks the client secret.
func (c Credentials) String() string {
	return "{base_url=" + c.BaseURL + " client_id=" + c.ClientID + " client_secret=" + slogx.Mask(c.ClientSecret) + "}"
}

// LogValue implements slog.LogValuer so credentials can be logged safely.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("client_id", c.ClientID),
		slog.String("client_secret", slogx.Mask(c.ClientSecret)),
	)
}

// Client talks to the provider API. It owns (or shares) a TokenManager and
// is safe for concurrent use.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	tokens     *TokenManager
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The client's Timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTokenManager injects an existing token cache instead of building one.
func WithTokenManager(tm *TokenManager) Option {
	return func(c *Client) { c.tokens = tm }
}

// NewClient builds a Client. Credentials are fixed for the client's lifetime.
// Missing credentials are not an error here; every call fails with KindConfig
// until a correctly configured client is used.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slogx.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.tokens == nil {
		c.tokens = NewTokenManager(creds, c.httpClient, c.logger, c.now)
	}

	return c
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() Credentials { return c.creds }

// Tokens exposes the client's token cache.
func (c *Client) Tokens() *TokenManager { return c.tokens }
