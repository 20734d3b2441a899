package service

import (
	"context"

	"github.com/mercadinho/auth-service/models"
)

// CredentialService owns registration and sign-in.
type CredentialService interface {
	// Register validates the email and password, hashes the password, and
	// persists a new credential. Returns true iff the record was created.
	Register(ctx context.Context, email, password string) (bool, error)

	// SignIn verifies the password against the stored hash and issues a new
	// session whose expiry is fixed at call time. The caller is responsible
	// for turning the session into a transport-level cookie.
	SignIn(ctx context.Context, email, password string) (models.Session, error)
}

// ResetService owns the password-reset request and redemption workflows.
type ResetService interface {
	// RequestReset mints a fresh reset token for the credential registered
	// with email, persists its hash, and dispatches a notification carrying
	// the raw token. Succeeds only if both effects complete.
	RequestReset(ctx context.Context, email string) (bool, error)

	// RedeemReset consumes a raw reset token: validates the new password,
	// verifies the token is unused and unexpired, writes the new password
	// hash, and invalidates all of the credential's outstanding tokens.
	RedeemReset(ctx context.Context, password, rawToken string) (bool, error)
}

// ResetNotifier delivers a password-reset message. Implementations own URL
// construction and expiry formatting; failures must be distinguishable from
// the validation/credential error kinds, which they are by not matching any
// of this package's sentinels.
type ResetNotifier interface {
	SendResetLink(ctx context.Context, notification models.ResetNotification) error
}
