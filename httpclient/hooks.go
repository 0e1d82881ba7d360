package httpclient

import (
	"net/http"

	"github.com/kbukum/restkit/logger"
)

// Hook inspects or mutates an outbound request just before it is sent.
// Returning an error aborts the request; the error reaches the caller
// unchanged.
type Hook func(*http.Request) error

// Option configures a Client at construction time.
type Option func(*Client)

// WithHook appends a hook to the client's outbound-request chain. Hooks
// run in registration order after all headers have been applied.
func WithHook(h Hook) Option {
	return func(c *Client) {
		c.hooks = append(c.hooks, h)
	}
}

// WithLogger enables a debug log line per request (method, url, status,
// duration). Off when no logger is set.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTransport replaces the underlying round tripper. Useful for tests
// and custom TLS setups.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}
