package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIDCtxKey struct{}

// RequestID injects a request ID into the context and response header.
// If the incoming request already carries X-Request-Id, it is preserved;
// otherwise a new UUID v4 is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDCtxKey{}, id)
		rw.Header().Set("X-Request-Id", id)
		next.ServeHTTP(rw, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request ID from ctx. Returns "" if absent.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}
