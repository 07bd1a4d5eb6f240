package middleware

import (
	"context"
	"net/http"
	"time"

	"prescription-reader/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom devuelve el id que puso chimw.RequestID ("" si no hay).
func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// RequestLogger loguea una línea por request con status y duración.
// Va después de chimw.RequestID para tener el id.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reqLog := log.With(map[string]any{"request_id": RequestIDFrom(r.Context())})
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				reqLog.Error("http request", fields)
				return
			}
			reqLog.Info("http request", fields)
		})
	}
}
