// Package middleware holds HTTP middleware applied ahead of the handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ragqa/ragqa-api/internal/api/shared"
)

// TraceMiddleware attaches a trace ID to the request context. Apply it
// early in the chain so every handler and log line below it can use the ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
