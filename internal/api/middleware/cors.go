package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows every origin, method and header, with credentials.
// The request's Origin is echoed back because a wildcard origin cannot be
// combined with credentials.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
	})
}
