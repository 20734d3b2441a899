package http

import (
	"encoding/json"
	"net/http"

	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/utils"
	"github.com/mercadinho/auth-service/models"
)

// sessionCookieName is the cookie carrying the opaque session id.
const sessionCookieName = "session_id"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.CredentialService.Register(ctx, body.Email, body.Password)
	if err != nil {
		log.Err(err).Msg("registration failed")
		utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
		return
	}
	if !created {
		log.Error().Msg("registration reported no created row")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "credential created"}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	session, err := h.services.CredentialService.SignIn(ctx, body.Email, body.Password)
	if err != nil {
		log.Err(err).Msg("sign-in failed")
		utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
		return
	}

	// The session id leaves the server only inside this cookie; the body
	// carries just the timestamps.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, session, http.StatusOK)
}
