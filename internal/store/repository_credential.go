package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It handles credential creation, lookup, and
// password-hash updates against the "credentials" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Exists reports whether a credential with the given email is registered.
// The query is a bare EXISTS check so no credential data leaves the database.
func (r *credentialRepository) Exists(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, credentialExists, email)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Exists").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Msg("error: existence check failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// CreateCredential persists a new credential record and returns the fully
// populated [models.Credential] with server-assigned fields (ID, Active,
// CreatedAt).
//
// The INSERT uses the [createCredential] prepared query which returns all
// columns via a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential, credential.Email, credential.PasswordHash)

	// create credential in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Credential{}, ErrEmailAlreadyExists
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved credential from db
	if err := row.Scan(&credential.ID, &credential.Email, &credential.PasswordHash, &credential.Active, &credential.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Credential{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return credential, nil
}

// FindCredentialByEmail retrieves the credential record registered with the
// given email.
//
// Error handling:
//   - No matching row → [ErrCredentialNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var found models.Credential
	row := r.db.QueryRowContext(ctx, findCredentialByEmail, email)

	// find credential by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByEmail").Msg("error: row is nil")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found credential from db
	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Active, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByEmail").Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdatePassword replaces the stored password hash of the credential
// identified by credentialID.
//
// Error handling:
//   - Driver-level error → wrapped as [ErrExecutingStatement].
//   - Zero affected rows → [ErrCredentialNotFound].
func (r *credentialRepository) UpdatePassword(ctx context.Context, credentialID string, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateCredentialPassword, credentialID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdatePassword").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Msg("error: password update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
