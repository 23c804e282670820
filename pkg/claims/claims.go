package claims

import (
	"time"

	"github.com/google/uuid"
)

// RegisteredClaims carries the PASETO registered claim set. Temporal
// claims are RFC 3339 timestamps in the token, which is time.Time's native
// JSON form. Nil temporal claims are unset and skipped during validation.
type RegisteredClaims struct {
	Issuer     string     `json:"iss,omitempty"` // Issuer - identifies who issued the token
	Subject    string     `json:"sub,omitempty"` // Subject - typically user ID or entity identifier
	Audience   string     `json:"aud,omitempty"` // Audience - intended recipient(s) of the token
	TokenID    string     `json:"jti,omitempty"` // Token ID - unique identifier for preventing token reuse
	Expiration *time.Time `json:"exp,omitempty"` // Expiration - instant after which the token is rejected
	NotBefore  *time.Time `json:"nbf,omitempty"` // Not before - instant before which the token is rejected
	IssuedAt   *time.Time `json:"iat,omitempty"` // Issued at - instant the token was created
}

// New returns claims for subject with a fresh random token ID and the
// issued-at claim set to now. Expiration is left unset; callers decide the
// lifetime.
func New(subject string) RegisteredClaims {
	now := time.Now().UTC()
	return RegisteredClaims{
		Subject:  subject,
		TokenID:  uuid.NewString(),
		IssuedAt: &now,
	}
}

// In is a convenience for pointer temporal claims: claims.Expiration =
// claims.In(time.Hour).
func In(d time.Duration) *time.Time {
	t := time.Now().UTC().Add(d)
	return &t
}

// Valid validates the temporal claims against the current time. Unset
// claims are ignored.
func (c RegisteredClaims) Valid() error {
	return c.validAt(time.Now())
}

func (c RegisteredClaims) validAt(now time.Time) error {
	if c.Expiration != nil && now.After(*c.Expiration) {
		return ErrTokenExpired
	}
	if c.NotBefore != nil && now.Before(*c.NotBefore) {
		return ErrTokenNotYetValid
	}
	return nil
}
