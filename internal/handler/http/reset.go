package http

import (
	"encoding/json"
	"net/http"

	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/service"
	"github.com/mercadinho/auth-service/internal/utils"
	"github.com/mercadinho/auth-service/models"
)

// resetTokenParam is the query parameter carrying the raw reset token on
// redemption. The token travels out-of-band from the JSON body on purpose:
// the front end lifts it straight from the emailed link.
const resetTokenParam = "token"

func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.ResetService.RequestReset(ctx, body.Email); err != nil {
		log.Err(err).Msg("reset request failed")
		utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "reset requested"}, http.StatusAccepted)
}

func (h *Handler) redeemReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawToken := r.URL.Query().Get(resetTokenParam)
	if rawToken == "" {
		log.Error().Msg("redemption without token")
		utils.WriteJSON(w, models.MessageResponse{Message: service.ErrInvalidCredentials.Error()}, http.StatusUnauthorized)
		return
	}

	var body models.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.ResetService.RedeemReset(ctx, body.Password, rawToken); err != nil {
		log.Err(err).Msg("reset redemption failed")
		utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "password updated"}, http.StatusOK)
}
