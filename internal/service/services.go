package service

import (
	"github.com/mercadinho/auth-service/internal/config"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/store"
)

type Services struct {
	CredentialService CredentialService
	ResetService      ResetService
}

func NewServices(storages *store.Storages, notifier ResetNotifier, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		CredentialService: NewCredentialService(storages.CredentialRepository, storages.SessionRepository, cfg, logger),
		ResetService:      NewResetService(storages.CredentialRepository, storages.ResetTokenRepository, notifier, cfg, logger),
	}
}
