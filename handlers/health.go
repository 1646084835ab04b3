package handlers

import (
	"net/http"

	"mission_control/viewer/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"status":  "ok",
		"service": "mission-viewer",
		"message": "Service is healthy",
	}
	utils.RenderJsonMessage(resp, w, http.StatusOK)
}

// NewAdminMux serves health and metrics apart from the page routes.
func NewAdminMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthCheckHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}
