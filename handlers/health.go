package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthHandler struct {
	isConnected func() bool
}

func NewHealthHandler(isConnected func() bool) *HealthHandler {
	return &HealthHandler{isConnected: isConnected}
}

// SetupEndpoints registers the health check and Prometheus metrics endpoints
func (h *HealthHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/health", h.handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	gateway := "disconnected"
	if h.isConnected() {
		gateway = "connected"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok", "gateway": gateway}); err != nil {
		log.Printf("❌ Failed to write health check response: %v", err)
	}
}
