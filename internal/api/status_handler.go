package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/postcraft-api/internal/api/shared"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
)

// Root handles GET / with a fixed liveness message.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: LivenessMessage})
}

// Health handles GET /health with a plain-text OK.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("Failed to write health check response", "error", err)
	}
}
