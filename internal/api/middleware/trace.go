package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/postcraft-api/internal/api/shared"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
// The request logger, tagged with the trace ID, is stored in the context too,
// and the ID is echoed in the X-Trace-ID response header.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.Default().With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		w.Header().Set(shared.TraceIDHeader, traceID)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
