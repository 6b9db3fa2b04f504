package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/postcraft-api/internal/api/shared"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
	"github.com/phrazzld/postcraft-api/internal/platform/reddit"
)

// RedditFetcher performs one upstream reddit fetch.
type RedditFetcher interface {
	Fetch(ctx context.Context, q reddit.Query) (*reddit.Response, error)
}

// RedditHandler proxies listing and comment requests to reddit.
type RedditHandler struct {
	client RedditFetcher
	logger *slog.Logger
}

// NewRedditHandler creates a new RedditHandler.
func NewRedditHandler(client RedditFetcher, logger *slog.Logger) *RedditHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedditHandler{client: client, logger: logger}
}

// skippedHeaders are never relayed from upstream.
var skippedHeaders = map[string]bool{
	"Connection":        true,
	"Content-Length":    true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
	"Trailer":           true,
}

// Proxy handles GET /api/reddit requests.
func (h *RedditHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	q, err := reddit.ParseQuery(r.URL.Query())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, redditErrorMessage(err))
		return
	}

	resp, err := h.client.Fetch(r.Context(), q)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	header := w.Header()
	for key, values := range resp.Header {
		if skippedHeaders[key] || strings.HasPrefix(key, "Access-Control-") {
			continue
		}
		for _, v := range values {
			header.Add(key, v)
		}
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json; charset=utf-8")
	}

	w.WriteHeader(resp.StatusCode)
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		log.Warn("reddit relay interrupted", "error", err, "bytes_written", n)
		return
	}

	log.Debug("reddit response relayed",
		"mode", string(q.Mode),
		"upstream_status", resp.StatusCode,
		"bytes", n)
}
