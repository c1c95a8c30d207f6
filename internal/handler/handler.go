package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// Pinger is the slice of the store client the base handler needs for health
// probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the non-resource endpoints and carries the CORS
// configuration.
type Handler struct {
	db Pinger
	// allowedOrigins is the CORS allow-list. Empty, or containing "*",
	// permits any origin.
	allowedOrigins []string
}

// New creates the base Handler.
func New(db Pinger, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// Root handles GET /api/.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "De Origen Natural API"})
}

func (h *Handler) allowsAnyOrigin() bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	for _, o := range h.allowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (h *Handler) originAllowed(origin string) bool {
	for _, o := range h.allowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// CORS permits cross-origin requests from the configured origins (any origin
// when none are configured): all methods and headers, credentials allowed.
// The matched request Origin is echoed; unlisted origins get no CORS headers.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (h.allowsAnyOrigin() || h.originAllowed(origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "*")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
