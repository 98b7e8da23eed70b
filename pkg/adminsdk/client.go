package adminsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// TokenSource supplies the current access credential for authenticated
// requests. Returning an empty string leaves the request unauthenticated.
type TokenSource func() string

// SDKClient is a client for the Buildora backend API.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens  TokenSource
	limiter *rate.Limiter
	cache   *TagCache
}

// Option configures an SDKClient.
type Option func(*SDKClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SDKClient) { c.HTTPClient = hc }
}

// WithTokenSource sets the credential source for authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *SDKClient) { c.tokens = ts }
}

// WithRateLimit throttles outbound requests. Zero limit disables throttling.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *SDKClient) {
		if limit > 0 {
			c.limiter = rate.NewLimiter(limit, burst)
		}
	}
}

// WithCache replaces the client's tag cache, letting several clients share
// one invalidation domain.
func WithCache(tc *TagCache) Option {
	return func(c *SDKClient) { c.cache = tc }
}

// NewSDKClient creates a new Buildora API client.
func NewSDKClient(baseURL string, opts ...Option) *SDKClient {
	c := &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: NewTagCache(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Cache returns the client's tag cache. Callers can Subscribe to
// invalidations or Reset it on logout.
func (c *SDKClient) Cache() *TagCache {
	return c.cache
}
