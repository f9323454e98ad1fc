package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS answers preflight requests and sets the Access-Control-* headers
// for the configured origins. The Authorization and X-Trace-ID headers are
// exposed so that browser clients can read the issued token.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	})(next)
}
