package store

import (
	"context"

	"github.com/mercadinho/auth-service/internal/config"
	"github.com/mercadinho/auth-service/internal/logger"
)

// Storages bundles every repository the services depend on.
type Storages struct {
	CredentialRepository CredentialRepository
	SessionRepository    SessionRepository
	ResetTokenRepository ResetTokenRepository
}

// NewStorages connects to PostgreSQL, runs pending migrations, and returns
// the repository set wired to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		CredentialRepository: NewCredentialRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		ResetTokenRepository: NewResetTokenRepository(db, logger),
	}, nil
}
