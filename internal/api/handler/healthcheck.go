package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// Pinger verifica se o banco responde
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// HealthcheckHandler responde 200 quando o banco está acessível e 503 caso contrário.
// db nil responde apenas o liveness.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{Status: "ok", Database: "skipped", Time: time.Now().UTC()}
		code := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: database unreachable")
				status.Status = "degraded"
				status.Database = "unreachable"
				code = http.StatusServiceUnavailable
			} else {
				status.Database = "ok"
			}
		}

		writeJSON(w, r, code, status)
	})
}
