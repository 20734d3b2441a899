package models

import "time"

// ResetToken is a one-time, time-bounded capability to change a password
// without knowing the current one. Only the hash of the raw token is ever
// stored; the raw value travels exclusively inside the reset notification.
type ResetToken struct {
	// ID is the opaque row identifier assigned by the store.
	ID string `json:"-"`

	// CredentialID is the owning credential. Tokens cascade-delete with
	// their credential.
	CredentialID string `json:"-"`

	// TokenHash is the hex-encoded SHA-256 digest of the raw token.
	// The raw token itself is never persisted or logged.
	TokenHash string `json:"-"`

	// ExpiresAt is the absolute expiry instant, fixed at issuance as
	// creation time plus the configured token lifetime.
	ExpiresAt time.Time `json:"expires_at"`

	// Used reports whether the token has been consumed. A successful
	// redemption marks every outstanding token of the credential used,
	// so no token issued before the redemption can be replayed.
	Used bool `json:"-"`
}

// Redeemable reports whether the token may still be redeemed at the given
// instant: it must be unused and not yet expired.
func (t ResetToken) Redeemable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "password_reset_tokens"
}
