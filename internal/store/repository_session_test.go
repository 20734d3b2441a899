package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mercadinho/auth-service/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &sessionRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour)

	rows := sqlmock.
		NewRows([]string{"id", "credential_id", "created_at", "expires_at", "active"}).
		AddRow("session-1", "cred-1", now, expiresAt, true)

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("cred-1", expiresAt).
		WillReturnRows(rows)

	created, err := repo.CreateSession(context.Background(), models.Session{
		CredentialID: "cred-1",
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "session-1" {
		t.Errorf("expected ID=session-1, got %s", created.ID)
	}
	if !created.ExpiresAt.Equal(expiresAt) {
		t.Errorf("expected expiry %v, got %v", expiresAt, created.ExpiresAt)
	}
	if !created.Active {
		t.Error("expected created session to be active")
	}
}

func TestCreateSession_CredentialGone(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	// The owning credential was deleted between verification and issuance.
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateSession(context.Background(), models.Session{CredentialID: "cred-missing"})
	if !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

func TestCreateSession_NoRowReturned(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	// RETURNING produced no row; Scan sees sql.ErrNoRows.
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "credential_id", "created_at", "expires_at", "active"}))

	_, err := repo.CreateSession(context.Background(), models.Session{CredentialID: "cred-1"})
	if !errors.Is(err, ErrSessionNotSaved) {
		t.Fatalf("expected ErrSessionNotSaved, got %v", err)
	}
}

func TestCreateSession_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateSession(context.Background(), models.Session{CredentialID: "cred-1"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateSession_ScanError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("session-1")

	mock.ExpectQuery("INSERT INTO sessions").
		WillReturnRows(rows)

	_, err := repo.CreateSession(context.Background(), models.Session{CredentialID: "cred-1"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
