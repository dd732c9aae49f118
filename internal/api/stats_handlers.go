package api

import (
	"net/http"
	"time"

	"estacioneai/internal/service"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

func (h *StatsHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.DashboardStats(time.Now()))
}
