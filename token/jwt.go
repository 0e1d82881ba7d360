package token

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ExpiryGuard wraps a Store and suppresses JWT tokens whose exp claim has
// passed, so a stale token never reaches the wire. Values that don't parse
// as JWTs (opaque tokens) pass through untouched, as do JWTs without an
// exp claim.
//
// The guard inspects claims without verifying the signature — verification
// is the backend's job; the client only decides whether sending the token
// is still worthwhile.
type ExpiryGuard struct {
	store Store
	// Leeway is subtracted from the expiry to stop using tokens that
	// would expire mid-flight.
	Leeway time.Duration

	now func() time.Time
}

// NewExpiryGuard wraps store with JWT expiry checking.
func NewExpiryGuard(store Store) *ExpiryGuard {
	return &ExpiryGuard{store: store, now: time.Now}
}

// Get returns the stored token, unless it is a JWT that has expired.
func (g *ExpiryGuard) Get(key string) (string, bool) {
	value, ok := g.store.Get(key)
	if !ok {
		return "", false
	}

	claims := gojwt.MapClaims{}
	parser := gojwt.NewParser()
	if _, _, err := parser.ParseUnverified(value, claims); err != nil {
		// Not a JWT; pass the opaque token through.
		return value, true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return value, true
	}

	now := g.now
	if now == nil {
		now = time.Now
	}
	if now().Add(g.Leeway).After(exp.Time) {
		return "", false
	}
	return value, true
}
