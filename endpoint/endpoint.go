// Package endpoint describes backend resource collections and the
// process-wide defaults they fall back to.
//
// An Endpoint identifies one resource collection on a REST backend. Only
// Entity is required; host, protocol, and timeout fall back to the Defaults
// passed at client construction:
//
//	defaults := endpoint.Defaults{Host: "api.example.com"}
//	ep := endpoint.Endpoint{Entity: "users"}
//	base, _ := ep.BaseURL(defaults) // "https://api.example.com/users/"
package endpoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/restkit/validation"
)

const (
	// DefaultProtocol is used when neither the endpoint nor the defaults
	// specify one.
	DefaultProtocol = "https"

	// DefaultTimeout is used when neither the endpoint nor the defaults
	// specify one.
	DefaultTimeout = 15 * time.Second
)

// Defaults holds process-wide fallbacks for endpoint resolution. It is a
// plain value passed explicitly into client construction; nothing in this
// package mutates it.
type Defaults struct {
	// Host is the default backend host, e.g. "api.example.com".
	Host string `json:"host" yaml:"host" mapstructure:"host"`

	// Protocol is the default scheme. Defaults to "https".
	Protocol string `json:"protocol" yaml:"protocol" mapstructure:"protocol" validate:"omitempty,oneof=http https"`

	// Timeout is the default request timeout. Defaults to 15s.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks the defaults.
func (d Defaults) Validate() error {
	return validation.Validate(d)
}

// Endpoint identifies one backend resource collection.
type Endpoint struct {
	// Address overrides the default host for this endpoint.
	Address string `json:"address" yaml:"address" mapstructure:"address"`

	// Entity is the resource collection name, e.g. "users". Required.
	Entity string `json:"entity" yaml:"entity" mapstructure:"entity" validate:"required"`

	// Protocol overrides the default scheme for this endpoint.
	Protocol string `json:"protocol" yaml:"protocol" mapstructure:"protocol" validate:"omitempty,oneof=http https"`

	// Timeout overrides the default request timeout for this endpoint.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks the descriptor.
func (e Endpoint) Validate() error {
	return validation.Validate(e)
}

// BaseURL computes the base address {protocol}://{host}/{entity}/ using the
// given defaults for any field the descriptor leaves empty.
func (e Endpoint) BaseURL(d Defaults) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	host := e.Address
	if host == "" {
		host = d.Host
	}
	if host == "" {
		return "", fmt.Errorf("endpoint: no address for entity %q and no default host", e.Entity)
	}

	protocol := e.Protocol
	if protocol == "" {
		protocol = d.Protocol
	}
	if protocol == "" {
		protocol = DefaultProtocol
	}

	return fmt.Sprintf("%s://%s/%s/",
		protocol,
		strings.Trim(host, "/"),
		strings.Trim(e.Entity, "/"),
	), nil
}

// RequestTimeout resolves the timeout for this endpoint against the defaults.
func (e Endpoint) RequestTimeout(d Defaults) time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	if d.Timeout > 0 {
		return d.Timeout
	}
	return DefaultTimeout
}
