package http

import (
	"errors"
	"net/http"

	"github.com/mercadinho/auth-service/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidEmailFormat:    http.StatusBadRequest,
	service.ErrInvalidPasswordFormat: http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError renders the client-facing message for err. Domain kinds
// carry their own safe wording; everything else collapses to the generic
// 500 text so infrastructure details never reach the response body.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
