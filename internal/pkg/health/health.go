// Package health implements the liveness and readiness probes. Liveness only
// proves the process is serving; readiness additionally runs the registered
// dependency checks (database, cache).
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// CheckFunc probes one dependency. It must respect ctx cancellation.
type CheckFunc func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// Handler serves the probe endpoints.
type Handler struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewHandler returns a Handler with no registered checks; such a handler is
// always ready.
func NewHandler() *Handler {
	return &Handler{checks: make(map[string]CheckFunc)}
}

// Register adds a named dependency check to the readiness probe.
func (h *Handler) Register(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Liveness always reports 200 while the process can serve requests.
func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Readiness runs every registered check and reports 503 with the failing
// dependencies when any of them is down.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	failures := make(map[string]string)
	for name, check := range checks {
		if err := check(ctx); err != nil {
			failures[name] = err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if len(failures) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "unhealthy", "failures": failures})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}
