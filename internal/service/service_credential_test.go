// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/mock"
	"github.com/mercadinho/auth-service/internal/store"
	"github.com/mercadinho/auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

const (
	testEmail    = "ana@mercadinho.com.br"
	testPassword = "Abc123!x"
)

// testNow is the pinned clock reading used everywhere a test needs a
// deterministic expiry.
var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

var errStorage = errors.New("storage error")

// newTestCredentialSvc returns the bare *credentialService with gomock
// repositories, a pinned clock, and the cheapest bcrypt cost so hashing does
// not dominate the test run.
func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (*credentialService, *mock.MockCredentialRepository, *mock.MockSessionRepository) {
	t.Helper()

	credentials := mock.NewMockCredentialRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := &credentialService{
		credentialRepository: credentials,
		sessionRepository:    sessions,
		bcryptCost:           bcrypt.MinCost,
		sessionLifetime:      7 * 24 * time.Hour,
		now:                  func() time.Time { return testNow },
		logger:               logger.Nop(),
	}

	return svc, credentials, sessions
}

// ─────────────────────────────────────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────────────────────────────────────

func TestCredentialService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().Exists(ctx, testEmail).Return(false, nil)
	credentials.EXPECT().CreateCredential(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Credential) (models.Credential, error) {
			assert.Equal(t, testEmail, c.Email)
			assert.NotEqual(t, testPassword, c.PasswordHash, "plaintext must never reach the store")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(testPassword)))

			c.ID = "cred-1"
			return c, nil
		},
	)

	ok, err := svc.Register(ctx, testEmail, testPassword)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCredentialService_Register_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: validation must reject before any store call.
	svc, _, _ := newTestCredentialSvc(t, ctrl)

	ok, err := svc.Register(context.Background(), "not-an-email", testPassword)

	require.ErrorIs(t, err, ErrInvalidEmailFormat)
	assert.False(t, ok)
}

func TestCredentialService_Register_InvalidPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	ok, err := svc.Register(context.Background(), testEmail, "weak")

	require.ErrorIs(t, err, ErrInvalidPasswordFormat)
	assert.False(t, ok)
}

func TestCredentialService_Register_EmailChecksBeforePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	// Both inputs are invalid; the email rule must win.
	ok, err := svc.Register(context.Background(), "not-an-email", "weak")

	require.ErrorIs(t, err, ErrInvalidEmailFormat)
	assert.False(t, ok)
}

func TestCredentialService_Register_EmailAlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().Exists(ctx, testEmail).Return(true, nil)

	ok, err := svc.Register(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, ok)
}

func TestCredentialService_Register_ExistenceCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().Exists(ctx, testEmail).Return(false, errStorage)

	ok, err := svc.Register(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, ok)
}

func TestCredentialService_Register_InsertRace_UniqueViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	// A concurrent registration slips between the existence check and the
	// insert; the store surfaces its unique-constraint error.
	credentials.EXPECT().Exists(ctx, testEmail).Return(false, nil)
	credentials.EXPECT().CreateCredential(ctx, gomock.Any()).Return(models.Credential{}, store.ErrEmailAlreadyExists)

	ok, err := svc.Register(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, ok)
}

func TestCredentialService_Register_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().Exists(ctx, testEmail).Return(false, nil)
	credentials.EXPECT().CreateCredential(ctx, gomock.Any()).Return(models.Credential{}, errStorage)

	ok, err := svc.Register(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, errStorage)
	assert.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// SignIn
// ─────────────────────────────────────────────────────────────────────────────

func TestCredentialService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, sessions := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	credentials.EXPECT().FindCredentialByEmail(ctx, testEmail).Return(models.Credential{
		ID:           "cred-1",
		Email:        testEmail,
		PasswordHash: string(hash),
	}, nil)

	sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) (models.Session, error) {
			assert.Equal(t, "cred-1", s.CredentialID)
			// Expiry is the pinned clock reading plus the configured lifetime.
			assert.Equal(t, testNow.Add(7*24*time.Hour), s.ExpiresAt)

			s.ID = "session-1"
			s.CreatedAt = testNow
			return s, nil
		},
	)

	session, err := svc.SignIn(ctx, testEmail, testPassword)

	require.NoError(t, err)
	assert.Equal(t, "session-1", session.ID)
	assert.Equal(t, testNow.Add(7*24*time.Hour), session.ExpiresAt)
}

func TestCredentialService_SignIn_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().FindCredentialByEmail(ctx, testEmail).Return(models.Credential{}, store.ErrCredentialNotFound)

	_, err := svc.SignIn(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_SignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Other123!x"), bcrypt.MinCost)
	require.NoError(t, err)

	credentials.EXPECT().FindCredentialByEmail(ctx, testEmail).Return(models.Credential{
		ID:           "cred-1",
		Email:        testEmail,
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.SignIn(ctx, testEmail, testPassword)

	// Same kind as the unknown-email case: the caller cannot tell them apart.
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_SignIn_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	credentials.EXPECT().FindCredentialByEmail(ctx, testEmail).Return(models.Credential{}, errStorage)

	_, err := svc.SignIn(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_SignIn_SessionCreationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, credentials, sessions := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	credentials.EXPECT().FindCredentialByEmail(ctx, testEmail).Return(models.Credential{
		ID:           "cred-1",
		PasswordHash: string(hash),
	}, nil)
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(models.Session{}, errStorage)

	_, err = svc.SignIn(ctx, testEmail, testPassword)

	require.ErrorIs(t, err, errStorage)
}
