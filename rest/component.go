package rest

import (
	"context"

	"github.com/kbukum/restkit/component"
	"github.com/kbukum/restkit/endpoint"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/token"
)

// Component wraps a Client with lifecycle management for applications
// that start and health-check their infrastructure uniformly. The client
// is created lazily in Start.
type Component struct {
	endpoint endpoint.Endpoint
	defaults endpoint.Defaults
	tokens   token.Store
	opts     []httpclient.Option

	client *Client
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new REST client component.
func NewComponent(ep endpoint.Endpoint, defaults endpoint.Defaults, tokens token.Store, opts ...httpclient.Option) *Component {
	return &Component{endpoint: ep, defaults: defaults, tokens: tokens, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	return "rest-" + c.endpoint.Entity
}

// Start creates the client, validating the endpoint against the defaults.
func (c *Component) Start(_ context.Context) error {
	client, err := New(c.endpoint, c.defaults, c.tokens, c.opts...)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

// Stop releases the client. The transport holds no resources that need
// explicit shutdown.
func (c *Component) Stop(_ context.Context) error {
	c.client = nil
	return nil
}

// Health reports whether the client has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.client == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for startup summaries.
func (c *Component) Describe() component.Description {
	details := ""
	if c.client != nil {
		details = c.client.HTTP().BaseURL()
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "rest-client",
		Details: details,
	}
}

// Client returns the wrapped client. Must be called after Start.
func (c *Component) Client() *Client {
	return c.client
}
