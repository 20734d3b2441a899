package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository]. Queries are built with squirrel so the used/expiry
// predicates stay in one place.
type resetTokenRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateResetToken persists a new reset-token row. Every reset request mints
// a fresh row; outstanding tokens of the same credential are left untouched.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrCredentialNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(token.TableName()).
		Columns("credential_id", "token_hash", "expires_at").
		Values(token.CredentialID, token.TokenHash, token.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.CreateResetToken").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Msg("error: reset token insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrCredentialNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// FindResetTokenByHash retrieves the token row whose token_hash matches.
// The lookup is by hash only; validity (used flag, expiry) is judged by the
// caller against its own clock.
//
// Error handling:
//   - No matching row → [ErrResetTokenNotFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *resetTokenRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var token models.ResetToken

	query, args, err := r.builder.
		Select("id", "credential_id", "token_hash", "expires_at", "used").
		From(token.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&token.ID, &token.CredentialID, &token.TokenHash, &token.ExpiresAt, &token.Used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*resetTokenRepository.FindResetTokenByHash").Msg("error: scanning error")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// InvalidateAllForCredential marks every reset token owned by credentialID
// as used. Blanket invalidation (rather than a single-row update) guarantees
// that no token issued before a successful redemption can be replayed.
//
// Updating zero rows is not an error: the caller may race with a concurrent
// redemption that already consumed the tokens.
func (r *resetTokenRepository) InvalidateAllForCredential(ctx context.Context, credentialID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.ResetToken{}.TableName()).
		Set("used", true).
		Where(sq.Eq{"credential_id": credentialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.InvalidateAllForCredential").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Msg("error: token invalidation failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
