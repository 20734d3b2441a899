// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mercadinho/auth-service/internal/service"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────────────────────────────────────
// POST /api/auth/reset-password — request a reset
// ─────────────────────────────────────────────────────────────────────────────

func TestRequestReset_Success(t *testing.T) {
	var gotEmail string
	resets := &stubResetService{
		requestFn: func(_ context.Context, email string) (bool, error) {
			gotEmail = email
			return true, nil
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", `{"email":"ana@example.com"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "reset requested", decodeMessage(t, rec))
	assert.Equal(t, "ana@example.com", gotEmail)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	resets := &stubResetService{
		requestFn: func(_ context.Context, _ string) (bool, error) {
			return false, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", `{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeMessage(t, rec))
}

func TestRequestReset_InvalidJSON(t *testing.T) {
	router := newTestRouter(&stubCredentialService{}, &stubResetService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestReset_GatewayFailureIsOpaque(t *testing.T) {
	resets := &stubResetService{
		requestFn: func(_ context.Context, _ string) (bool, error) {
			return false, errors.New("mail gateway returned status 503")
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", `{"email":"ana@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeMessage(t, rec))
}

// ─────────────────────────────────────────────────────────────────────────────
// PUT /api/auth/reset-password — redeem a token
// ─────────────────────────────────────────────────────────────────────────────

func TestRedeemReset_Success(t *testing.T) {
	var gotPassword, gotToken string
	resets := &stubResetService{
		redeemFn: func(_ context.Context, password, rawToken string) (bool, error) {
			gotPassword, gotToken = password, rawToken
			return true, nil
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPut, "/api/auth/reset-password?token=deadbeef", `{"password":"Xyz789?a"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "password updated", decodeMessage(t, rec))
	assert.Equal(t, "Xyz789?a", gotPassword)
	assert.Equal(t, "deadbeef", gotToken)
}

func TestRedeemReset_MissingToken(t *testing.T) {
	called := false
	resets := &stubResetService{
		redeemFn: func(_ context.Context, _, _ string) (bool, error) {
			called = true
			return true, nil
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPut, "/api/auth/reset-password", `{"password":"Xyz789?a"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "the service must not be reached without a token")
}

func TestRedeemReset_InvalidPassword(t *testing.T) {
	resets := &stubResetService{
		redeemFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, service.ErrInvalidPasswordFormat
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPut, "/api/auth/reset-password?token=deadbeef", `{"password":"weak"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrInvalidPasswordFormat.Error(), decodeMessage(t, rec))
}

func TestRedeemReset_BadToken(t *testing.T) {
	resets := &stubResetService{
		redeemFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(&stubCredentialService{}, resets)

	rec := doJSON(t, router, http.MethodPut, "/api/auth/reset-password?token=expired-or-used", `{"password":"Xyz789?a"}`)

	// Unknown, spent, and expired tokens are indistinguishable to the client.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeMessage(t, rec))
}

func TestRedeemReset_InvalidJSON(t *testing.T) {
	router := newTestRouter(&stubCredentialService{}, &stubResetService{})

	rec := doJSON(t, router, http.MethodPut, "/api/auth/reset-password?token=deadbeef", ``)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
