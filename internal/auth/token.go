package auth

import (
	"context"
	"time"
)

// expirySkew is how long before actual expiry a token stops counting as
// valid, so a request never leaves with a token about to lapse mid-flight.
const expirySkew = 30 * time.Second

// TokenSet holds the identity provider's current session tokens.
type TokenSet struct {
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Valid reports whether the ID token is present and not within the expiry
// skew at the given instant.
func (t TokenSet) Valid(now time.Time) bool {
	return t.IDToken != "" && now.Add(expirySkew).Before(t.ExpiresAt)
}

// TokenSource supplies a bearer token for outbound API calls. The API
// client depends only on this, not on the concrete provider.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}
