package middlewares

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

const RequestIDHeader = "X-Request-Id"

// RequestID propagates the caller's X-Request-Id or mints a new one, and
// stores it in the request context for config.WithContext.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := config.ContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
