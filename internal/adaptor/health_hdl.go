package adaptor

import (
	"net/http"
	"time"

	"safari-booking/internal/data/resolve"
	"safari-booking/pkg/database"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	resolver *resolve.Resolver
	db       database.PgxIface
	log      *zap.Logger
}

func NewHealthHandler(resolver *resolve.Resolver, db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		resolver: resolver,
		db:       db,
		log:      log.With(zap.String("handler", "health")),
	}
}

// Live handles GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready. Without a database the process serves
// fallback content and is still ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.resolver.HasDB() || h.db == nil {
		utils.ResponseSuccess(w, map[string]string{"status": "ok", "database": "not configured"})
		return
	}

	if err := database.PingWithTimeout(h.db, readinessTimeout); err != nil {
		h.log.Warn("Readiness check failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "unreachable"})
		return
	}

	utils.ResponseSuccess(w, map[string]string{"status": "ok", "database": "ok"})
}
