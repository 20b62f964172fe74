package middleware

import (
	"net/http"
	"time"

	"pets-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog escribe una línea por request. Debe ir después de chimw.RequestID
// para poder incluir el request_id.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      statusOf(ww),
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"remote":      r.RemoteAddr,
				}
				if id := chimw.GetReqID(r.Context()); id != "" {
					fields["request_id"] = id
				}

				if statusOf(ww) >= http.StatusInternalServerError {
					log.Warn("request", fields)
					return
				}
				log.Info("request", fields)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Un handler que no llama WriteHeader responde 200 implícitamente.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
