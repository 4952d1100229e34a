package handlers

import (
	"context"
	"net/http"

	"starwars-api/store"

	"github.com/umakantv/go-utils/httpserver"
	"go.uber.org/zap"
)

// HealthHandler handles GET /health, including a database ping
func HealthHandler(s *store.Store) httpserver.HandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(ctx); err != nil {
			logRequest(ctx, "error", "Database ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "service": "starwars-api"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "starwars-api"})
	}
}
