package miniflux

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "minifluxer"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	credentials Credentials
	httpClient  *http.Client
	timeout     time.Duration
	userAgent   string
	logger      zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		credentials: NoAuth{},
		timeout:     defaultTimeout,
		userAgent:   defaultUserAgent,
		logger:      zerolog.Nop(),
	}
}

// WithToken authenticates every request with an API token. An empty token
// sends no credentials.
func WithToken(token string) Option {
	return func(o *clientOptions) {
		if token == "" {
			o.credentials = NoAuth{}
			return
		}
		o.credentials = TokenAuth{Token: token}
	}
}

// WithBasicAuth authenticates every request with a username and password.
func WithBasicAuth(username, password string) Option {
	return func(o *clientOptions) {
		o.credentials = BasicAuth{Username: username, Password: password}
	}
}

// WithCredentials sets the auth variant explicitly.
func WithCredentials(creds Credentials) Option {
	return func(o *clientOptions) {
		if creds == nil {
			creds = NoAuth{}
		}
		o.credentials = creds
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is ignored
// when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-request debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
