package puxbay

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration collected before a Client is built.
type clientOptions struct {
	baseURL        string
	timeout        time.Duration
	maxRetries     int
	retryBaseDelay time.Duration
	maxRetryDelay  time.Duration
	userAgent      string
	httpClient     *http.Client
	logger         zerolog.Logger
	metrics        *Metrics
	rateLimit      rate.Limit
	rateBurst      int
}

// WithBaseURL overrides the API base URL. A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets how many additional attempts a transient failure gets.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		o.maxRetries = retries
	}
}

// WithRetryBaseDelay sets the backoff unit: retry n waits base * 2^n.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		o.retryBaseDelay = delay
	}
}

// WithMaxRetryDelay caps a single backoff delay.
func WithMaxRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		o.maxRetryDelay = delay
	}
}

// WithUserAgent replaces the default puxbay-go/<version> user agent.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout takes precedence
// over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for request and retry events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMetrics registers request metrics on the given registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.metrics = NewMetrics(registerer)
	}
}

// WithRateLimit throttles outgoing attempts to rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		o.rateLimit = rate.Limit(rps)
		o.rateBurst = burst
	}
}

func (o *clientOptions) validate() error {
	if o.baseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(o.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, o.baseURL)
	}
	if o.timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if o.maxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidConfig)
	}
	if o.retryBaseDelay < 0 || o.maxRetryDelay < 0 {
		return fmt.Errorf("%w: retry delays must not be negative", ErrInvalidConfig)
	}
	if o.rateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidConfig)
	}
	return nil
}
