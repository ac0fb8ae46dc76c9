package handler

import (
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// HashHandler handles HTTP requests for Argon2id hashing and verification.
type HashHandler struct{}

// NewHashHandler creates a new HashHandler.
func NewHashHandler() *HashHandler {
	return &HashHandler{}
}

// HandleHash handles POST /api/v1/hash requests.
func (h *HashHandler) HandleHash(w http.ResponseWriter, r *http.Request) {
	var req model.HashRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.HashResponse{Hash: hash})
}

// HandleVerify handles POST /api/v1/hash/verify requests.
func (h *HashHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	match, err := crypto.VerifyPassword(req.Password, req.Hash)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidHashFormat) || errors.Is(err, crypto.ErrIncompatibleVersion) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.VerifyResponse{Match: match})
}
