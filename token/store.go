// Package token provides the read capability the REST client uses to pick
// up its bearer token. The client reads the token fresh on every request
// under the fixed Key, so a rotation takes effect on the very next call;
// writing and clearing tokens is the embedding application's business.
package token

import "sync"

// Key is the fixed storage key the REST client reads its bearer token from.
const Key = "auth_token"

// Store is the minimal read capability for persisted tokens. The second
// return value reports whether a value is present; absence is not an error.
type Store interface {
	Get(key string) (string, bool)
}

// Memory is an in-memory Store, safe for concurrent use. The zero value is
// ready to use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key, if present.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

// Delete removes the value under key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Static is a Store that always returns the same token for every key.
// Useful for tests and fixed-credential setups.
type Static string

// Get returns the static token for any key.
func (s Static) Get(string) (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}
