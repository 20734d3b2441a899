package service

import "errors"

// Domain error kinds. Callers should use [errors.Is] to match against these
// values; anything that matches none of them is an infrastructure failure.
var (
	// ErrInvalidEmailFormat is returned when the supplied email does not
	// match the accepted address pattern. Recoverable by resubmitting
	// corrected input.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrInvalidPasswordFormat is returned when the supplied password does
	// not satisfy the minimum length and character-class rules. Recoverable
	// by resubmitting corrected input.
	ErrInvalidPasswordFormat = errors.New("invalid password format")

	// ErrInvalidCredentials is the single undifferentiated authentication
	// failure: unknown email, wrong password, already-registered email, and
	// missing/expired/used reset tokens all surface as this kind so that
	// callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
