package handlers

import (
	"net/http"

	"classroom-relay/internal/contextutil"
)

// Ping handles liveness probes.
//
// swagger:route GET /test health ping
//
// # Liveness check
//
// Returns a plain-text OK without touching any upstream.
//
// ---
// produces:
// - text/plain
// responses:
//
//	'200':
//	  description: Service is up
func Ping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "ping")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
