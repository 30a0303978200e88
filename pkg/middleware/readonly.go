package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// ReadOnly rejects every method that could change state.
func ReadOnly(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				logger.Warn("Rejected write request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Allow", "GET, HEAD, OPTIONS")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusMethodNotAllowed)
				w.Write([]byte(`{"status":false,"message":"Seats are booked from the menu"}`))
			}
		})
	}
}
