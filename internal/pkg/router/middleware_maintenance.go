package router

import (
	"net/http"

	"github.com/shandysiswandi/gonotif/internal/pkg/config"
)

// maintenanceAll blocks every route except the ones in alwaysOpen.
const maintenanceAll = "*"

var alwaysOpen = map[string]struct{}{"/": {}, "/health": {}}

// middlewareMaintenance answers 503 for the routes listed in
// app.maintenance.endpoints. The list is read once at startup.
func middlewareMaintenance(cfg config.Config) Middleware {
	blocked := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			blocked[endpoint] = struct{}{}
		}
	}
	_, all := blocked[maintenanceAll]

	return func(next http.Handler) http.Handler {
		if len(blocked) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			_, listed := blocked[route]
			_, open := alwaysOpen[route]

			if listed || (all && !open) {
				w.Header().Set("Retry-After", "60")
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
