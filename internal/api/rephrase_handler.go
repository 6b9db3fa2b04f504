package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/postcraft-api/internal/api/shared"
	"github.com/phrazzld/postcraft-api/internal/generation"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
)

// ContentGenerator renders a prompt for mode and returns the backend's text.
type ContentGenerator interface {
	Generate(ctx context.Context, mode generation.Mode, content string) (*generation.Result, error)
}

// RephraseHandler handles generation requests.
type RephraseHandler struct {
	generator    ContentGenerator
	strictErrors bool
	logger       *slog.Logger
}

// NewRephraseHandler creates a new RephraseHandler.
// With strictErrors unset, backend failures are reported in a 200 response.
func NewRephraseHandler(generator ContentGenerator, strictErrors bool, logger *slog.Logger) *RephraseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RephraseHandler{
		generator:    generator,
		strictErrors: strictErrors,
		logger:       logger,
	}
}

// Rephrase handles POST /rephrase/ requests.
func (h *RephraseHandler) Rephrase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var mode generation.Mode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := generation.ParseMode(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		mode = parsed
	}

	var req RephraseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, DescribeDecodeError(err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	result, err := h.generator.Generate(r.Context(), mode, *req.Content)
	if err != nil {
		status := http.StatusOK
		if h.strictErrors {
			status = MapErrorToStatusCode(err)
		}
		shared.RespondWithErrorAndLog(w, r, status, err.Error(), err)
		return
	}

	log.Debug("rephrase request served",
		"generation_id", result.ID.String(),
		"mode", string(result.Mode))

	shared.RespondWithJSON(w, r, http.StatusOK, RephraseResponse{Rephrased: result.Text})
}
