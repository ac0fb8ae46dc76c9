package handler

import (
	"log/slog"
	"net/http"

	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
)

// AuditHandler handles HTTP requests for audit-log statistics.
type AuditHandler struct {
	repo *repository.AuditRepository
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(repo *repository.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// HandleStats handles GET /api/v1/audit/stats requests.
func (h *AuditHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if subject, ok := middleware.SubjectFromContext(r.Context()); ok {
		slog.Info("audit stats requested", "subject", subject)
	}

	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
