package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kbukum/restkit/endpoint"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/token"
)

// Client is a REST client bound to one backend resource collection.
// All fields are read-only after construction, so a single client may be
// used from any number of goroutines; in-flight calls share nothing but
// the transport configuration.
type Client struct {
	http   *httpclient.Client
	entity string
}

// New creates a client for the given endpoint descriptor. Host, protocol,
// and timeout fall back to the defaults; the token store is read fresh on
// every request by the registered bearer hook.
func New(ep endpoint.Endpoint, defaults endpoint.Defaults, tokens token.Store, opts ...httpclient.Option) (*Client, error) {
	base, err := ep.BaseURL(defaults)
	if err != nil {
		return nil, err
	}

	cfg := httpclient.Config{
		Name:    ep.Entity,
		BaseURL: base,
		Timeout: ep.RequestTimeout(defaults),
		Headers: map[string]string{"Content-Type": "application/json"},
	}

	opts = append(opts, httpclient.WithHook(BearerHook(tokens)))
	c, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: c, entity: ep.Entity}, nil
}

// NewFromClient wraps an existing HTTP client. The caller is responsible
// for any auth hooks.
func NewFromClient(c *httpclient.Client, entity string) *Client {
	return &Client{http: c, entity: entity}
}

// BearerHook returns an outbound-request hook that reads the bearer token
// from the store under token.Key on every request. A present token becomes
// an Authorization header; absence is not an error and the request goes
// out unauthenticated.
func BearerHook(store token.Store) httpclient.Hook {
	return func(req *http.Request) error {
		if store == nil {
			return nil
		}
		if tok, ok := store.Get(token.Key); ok && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		return nil
	}
}

// Entity returns the resource collection name the client is bound to.
func (c *Client) Entity() string {
	return c.entity
}

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// Get fetches one resource by id and decodes the body into T.
func Get[T any](ctx context.Context, c *Client, id string) (T, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: id})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp)
}

// List fetches the collection with optional filter, navigation, and
// sorting modifiers bundled as query parameters.
func List[T any](ctx context.Context, c *Client, opts ...ListOption) (T, error) {
	var q ListQuery
	for _, opt := range opts {
		opt(&q)
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Query:  q.encode(),
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp)
}

// Create submits data via PUT and returns the identifier of the created
// resource. Backends disagree on quoting: a JSON string body is unquoted,
// anything else comes back as raw text.
func Create(ctx context.Context, c *Client, data any) (string, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{Method: http.MethodPut, Body: data})
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(resp.Body, &id); err == nil {
		return id, nil
	}
	return strings.TrimSpace(string(resp.Body)), nil
}

// Update patches the resource with the given id and decodes the body
// into T.
func Update[T any](ctx context.Context, c *Client, id string, data any) (T, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPatch,
		Path:   id,
		Body:   data,
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp)
}

// Delete removes the resource with the given id and reports success.
// A 200 with a JSON boolean body yields that boolean; a 200 with any
// other non-empty body still counts as success.
func Delete(ctx context.Context, c *Client, id string) (bool, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{Method: http.MethodDelete, Path: id})
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		return false, nil
	}
	var ok bool
	if err := json.Unmarshal(resp.Body, &ok); err == nil {
		return ok, nil
	}
	return true, nil
}

// Call is the escape hatch for method/path/body combinations the typed
// verbs don't cover. data, when non-nil, is sent as the JSON body.
func Call[T any](ctx context.Context, c *Client, method, path string, data any) (T, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: method,
		Path:   path,
		Body:   data,
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp)
}

// decode applies the permissive result contract: exactly status 200 with
// a non-empty body decodes into T; everything else yields the zero value
// with a nil error. See the package doc for the trade-off.
func decode[T any](resp *httpclient.Response) (T, error) {
	var out T
	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("rest: decode response: %w", err)
	}
	return out, nil
}
