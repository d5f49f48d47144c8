// Package middlewares holds the HTTP middlewares that are specific to this
// service; generic ones (logging, recovery) come from chi.
package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderXRequestID carries the request correlation id.
const HeaderXRequestID = "X-Request-Id"

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID honours an inbound X-Request-Id header or mints a fresh UUID,
// stores it in the request context, and echoes it on the response so callers
// can correlate logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID, or "" if the
// middleware did not run.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
