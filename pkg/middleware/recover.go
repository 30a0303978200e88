package middleware

import (
	"net/http"

	"flight-seating/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into the standard 500 envelope. A panic
// here means a seat reached the grid accessors unparsed, so the raw path is
// logged to reproduce it.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("raw_path", r.URL.RawPath),
						zap.String("ip", r.RemoteAddr),
						zap.Stack("stack"),
					)
					utils.ResponseInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
