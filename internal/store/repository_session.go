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

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Sessions are write-only for this service: the core
// issues them at sign-in and never reads them back.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns the fully populated
// [models.Session] with server-assigned fields (ID, CreatedAt, Active).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrCredentialNotFound]
//     (the owning credential disappeared between verification and issuance).
//   - No row returned → [ErrSessionNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.CredentialID, session.ExpiresAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Session{}, ErrCredentialNotFound
		default:
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&session.ID, &session.CredentialID, &session.CreatedAt, &session.ExpiresAt, &session.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotSaved
		}
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}
