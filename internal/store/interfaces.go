package store

import (
	"context"

	"github.com/mercadinho/auth-service/models"
)

// CredentialRepository persists and looks up credential records.
type CredentialRepository interface {
	// Exists reports whether a credential with the given email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// CreateCredential persists a new credential and returns it with
	// server-assigned fields (ID, CreatedAt) populated.
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// FindCredentialByEmail retrieves the credential registered with email.
	// Returns ErrCredentialNotFound when no such credential exists.
	FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error)

	// UpdatePassword replaces the stored password hash of the credential.
	UpdatePassword(ctx context.Context, credentialID string, passwordHash string) error
}

// SessionRepository persists session records issued at sign-in.
type SessionRepository interface {
	// CreateSession persists a new session and returns it with
	// server-assigned fields (ID, CreatedAt) populated.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
}

// ResetTokenRepository persists password-reset token records. Only token
// hashes cross this boundary; raw tokens never reach the store.
type ResetTokenRepository interface {
	// CreateResetToken persists a new reset token record.
	CreateResetToken(ctx context.Context, token models.ResetToken) error

	// FindResetTokenByHash retrieves the token record whose hash matches.
	// Returns ErrResetTokenNotFound when no such token exists.
	FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error)

	// InvalidateAllForCredential marks every reset token owned by the
	// credential as used, preventing replay of tokens issued earlier.
	InvalidateAllForCredential(ctx context.Context, credentialID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-level errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
