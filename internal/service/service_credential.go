package service

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/mercadinho/auth-service/internal/config"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/store"
	"github.com/mercadinho/auth-service/models"
	"golang.org/x/crypto/bcrypt"
)

// credentialService is the concrete implementation of CredentialService.
// It handles registration (validate, hash, persist) and sign-in (verify,
// issue session) using a CredentialRepository and SessionRepository for
// persistence and bcrypt for password hashing.
type credentialService struct {
	// credentialRepository is the data-access layer for credential records.
	credentialRepository store.CredentialRepository

	// sessionRepository persists sessions issued at sign-in.
	sessionRepository store.SessionRepository

	// bcryptCost is the configured bcrypt cost factor applied when hashing
	// passwords. Taken from configuration, never hard-coded.
	bcryptCost int

	// sessionLifetime is added to the clock reading at sign-in to produce
	// the session expiry. Fixed at issuance, never recomputed.
	sessionLifetime time.Duration

	// now is the clock used for expiry computation. Injected so tests can
	// pin it.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repositories and populated with policy values from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCredentialService(credentials store.CredentialRepository, sessions store.SessionRepository, cfg config.Auth, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentials,
		sessionRepository:    sessions,
		bcryptCost:           cfg.BcryptCost,
		sessionLifetime:      cfg.SessionLifetime,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register creates a new credential.
//
// The email is validated first, then the password, so callers observe
// whichever rule fails first. An already-registered email fails with
// ErrInvalidCredentials rather than a distinguishing message, to avoid
// account enumeration. The plaintext password never reaches a log or a
// store call; only its bcrypt hash is persisted.
//
// Returns true iff the store reports the row was created, or:
//   - ErrInvalidEmailFormat / ErrInvalidPasswordFormat on validation failure.
//   - ErrInvalidCredentials if the email is already registered (including
//     the insert-time unique-violation race).
//   - A wrapped storage error on any other repository failure.
func (s *credentialService) Register(ctx context.Context, email, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validateEmail(email); err != nil {
		log.Error().Str("email", email).Msg("rejected email format")
		return false, err
	}
	if err := validatePassword(password); err != nil {
		log.Error().Str("email", email).Msg("rejected password format")
		return false, err
	}

	exists, err := s.credentialRepository.Exists(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("credential existence check failed")
		return false, fmt.Errorf("credential existence check failed: %w", err)
	}
	if exists {
		log.Error().Str("email", email).Msg("email is already registered")
		return false, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.credentialRepository.CreateCredential(ctx, models.Credential{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A concurrent registration can slip between the existence check and
		// the insert; the unique constraint surfaces it here.
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return false, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("credential creation ended with error")
		return false, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return created.ID != "", nil
}

// SignIn authenticates an existing credential and issues a session.
//
// The same ErrInvalidCredentials is used for "no such email" and "wrong
// password" so the response leaks nothing about which check failed. The
// password comparison delegates to bcrypt's constant-work primitive.
//
// On success the session expiry is the clock reading plus the configured
// session lifetime; the session row is created by the SessionRepository and
// returned with its server-assigned id. The service performs no cookie or
// header work.
func (s *credentialService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	credential, err := s.credentialRepository.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			log.Error().Str("email", email).Msg("sign-in for unknown email")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("credential lookup failed")
		return models.Session{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Str("email", email).Msg("wrong password")
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}

	expiresAt := s.now().Add(s.sessionLifetime)

	session, err := s.sessionRepository.CreateSession(ctx, models.Session{
		CredentialID: credential.ID,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		log.Err(err).Str("credential_id", credential.ID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}
