package models

import "time"

// ResetNotification carries the values a notification sender needs to build
// a password-reset message. The sender owns the outward-facing reset URL and
// the display formatting of the expiry; the core only supplies raw values.
type ResetNotification struct {
	// RawToken is the plaintext reset token. It exists only in memory and
	// in the outbound message; it is never persisted or logged.
	RawToken string

	// ExpiresAt is when the token stops being redeemable.
	ExpiresAt time.Time

	// Recipient is the email address of the credential owner.
	Recipient string
}
