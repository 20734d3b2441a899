package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// credential fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCredentialNotFound is returned when a lookup or update targets a
	// credential that does not exist in the database.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrResetTokenNotFound is returned when no reset token record matches
	// the supplied token hash.
	ErrResetTokenNotFound = errors.New("reset token not found")

	// ErrSessionNotSaved is returned when a session INSERT completes without
	// a driver error but no row comes back, meaning nothing was persisted.
	ErrSessionNotSaved = errors.New("session was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
