package controllers

import (
	"net/http"
	"time"

	"github.com/printventory/printventory-backend/api/responses"
	"github.com/printventory/printventory-backend/pkg/config"
)

// Health reports service liveness with the current timestamp.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Printventory-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
