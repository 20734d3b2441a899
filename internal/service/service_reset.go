package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mercadinho/auth-service/internal/config"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/store"
	"github.com/mercadinho/auth-service/models"
	"golang.org/x/crypto/bcrypt"
)

// resetService is the concrete implementation of ResetService. It owns the
// reset-token lifecycle: minting on request, validity checks and blanket
// invalidation on redemption. It reuses the credential validation and
// hashing primitives of this package.
type resetService struct {
	// credentialRepository resolves emails to credentials and receives the
	// new password hash on redemption.
	credentialRepository store.CredentialRepository

	// resetTokenRepository persists token hashes and marks them used.
	resetTokenRepository store.ResetTokenRepository

	// notifier delivers the reset link carrying the raw token.
	notifier ResetNotifier

	// bcryptCost is the configured bcrypt cost factor for the new password.
	bcryptCost int

	// tokenLifetime is added to the clock reading at request time to
	// produce the token expiry.
	tokenLifetime time.Duration

	// tokenLength is the number of random bytes drawn for a raw token.
	tokenLength int

	// now is the clock used for expiry computation and redemption checks.
	now func() time.Time

	logger *logger.Logger
}

// NewResetService constructs a ResetService wired to the given repositories
// and notifier, with policy values from cfg.
func NewResetService(credentials store.CredentialRepository, tokens store.ResetTokenRepository, notifier ResetNotifier, cfg config.Auth, logger *logger.Logger) ResetService {
	return &resetService{
		credentialRepository: credentials,
		resetTokenRepository: tokens,
		notifier:             notifier,
		bcryptCost:           cfg.BcryptCost,
		tokenLifetime:        cfg.ResetTokenLifetime,
		tokenLength:          cfg.ResetTokenLength,
		now:                  time.Now,
		logger:               logger,
	}
}

// RequestReset mints a fresh reset token for the credential registered with
// email. Every call creates a new token; outstanding tokens are not
// de-duplicated.
//
// The token row (hash only) and the notification (raw token) are issued
// concurrently and jointly awaited: the call succeeds only if both complete,
// and a failure of either surfaces to the caller. There is no compensating
// action for the partial-failure case; the system may be left with a
// persisted, never-delivered token.
//
// Returns:
//   - ErrInvalidCredentials when no credential is registered with email.
//   - A wrapped storage or notification error when either effect fails.
func (s *resetService) RequestReset(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	credential, err := s.credentialRepository.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			log.Error().Str("email", email).Msg("reset request for unknown email")
			return false, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("credential lookup failed")
		return false, fmt.Errorf("credential lookup failed: %w", err)
	}

	rawToken, err := generateResetToken(s.tokenLength)
	if err != nil {
		return false, err
	}

	expiresAt := s.now().Add(s.tokenLifetime)

	token := models.ResetToken{
		CredentialID: credential.ID,
		TokenHash:    hashResetToken(rawToken),
		ExpiresAt:    expiresAt,
	}

	notification := models.ResetNotification{
		RawToken:  rawToken,
		ExpiresAt: expiresAt,
		Recipient: credential.Email,
	}

	var wg sync.WaitGroup
	var createErr, notifyErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		createErr = s.resetTokenRepository.CreateResetToken(ctx, token)
	}()
	go func() {
		defer wg.Done()
		notifyErr = s.notifier.SendResetLink(ctx, notification)
	}()
	wg.Wait()

	if err := errors.Join(createErr, notifyErr); err != nil {
		log.Err(err).Str("credential_id", credential.ID).Msg("reset request ended with error")
		return false, fmt.Errorf("reset request ended with error: %w", err)
	}

	return true, nil
}

// RedeemReset consumes a raw reset token and sets a new password.
//
// The new password is validated with the registration rule first. The token
// is then resolved by its hash; an unknown, already-used, or expired token
// all fail with the same ErrInvalidCredentials, no distinction surfaced.
//
// On a valid token the new password hash and the blanket token invalidation
// are written concurrently and jointly awaited. No cross-table transaction
// spans the two writes: if one fails after the other succeeded, the error
// propagates and the completed write is not rolled back.
func (s *resetService) RedeemReset(ctx context.Context, password, rawToken string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validatePassword(password); err != nil {
		log.Error().Msg("rejected password format")
		return false, err
	}

	token, err := s.resetTokenRepository.FindResetTokenByHash(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			log.Error().Msg("redemption with unknown token")
			return false, ErrInvalidCredentials
		}
		log.Err(err).Msg("reset token lookup failed")
		return false, fmt.Errorf("reset token lookup failed: %w", err)
	}

	if !token.Redeemable(s.now()) {
		log.Error().Str("credential_id", token.CredentialID).Bool("used", token.Used).Msg("redemption with spent or expired token")
		return false, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("password hashing failed: %w", err)
	}

	var wg sync.WaitGroup
	var updateErr, invalidateErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		updateErr = s.credentialRepository.UpdatePassword(ctx, token.CredentialID, string(hash))
	}()
	go func() {
		defer wg.Done()
		invalidateErr = s.resetTokenRepository.InvalidateAllForCredential(ctx, token.CredentialID)
	}()
	wg.Wait()

	if err := errors.Join(updateErr, invalidateErr); err != nil {
		log.Err(err).Str("credential_id", token.CredentialID).Msg("reset redemption ended with error")
		return false, fmt.Errorf("reset redemption ended with error: %w", err)
	}

	return true, nil
}
