package handler

import (
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// AuthHandler handles HTTP requests for the API-key token exchange.
type AuthHandler struct {
	service *service.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.TokenService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleToken handles POST /api/v1/auth/token requests.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.service.Exchange(req.APIKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAPIKey) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}
