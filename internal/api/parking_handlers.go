package api

import (
	"encoding/json"
	"net/http"

	"estacioneai/internal/db"
	"estacioneai/internal/errors"
	"estacioneai/internal/service"

	"github.com/gorilla/mux"
)

type ParkingHandler struct {
	Service *service.ReservationService
}

func NewParkingHandler(svc *service.ReservationService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

func (h *ParkingHandler) ListParkingLots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListLots())
}

func (h *ParkingHandler) GetParkingLot(w http.ResponseWriter, r *http.Request) {
	lot, err := h.Service.GetLot(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lot)
}

func (h *ParkingHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	lotID := r.URL.Query().Get("lot_id")
	writeJSON(w, http.StatusOK, h.Service.ListSpots(lotID))
}

func (h *ParkingHandler) ListAvailableSpots(w http.ResponseWriter, r *http.Request) {
	lotID := r.URL.Query().Get("lot_id")
	writeJSON(w, http.StatusOK, h.Service.ListAvailableSpots(lotID))
}

func (h *ParkingHandler) GetSpot(w http.ResponseWriter, r *http.Request) {
	spot, err := h.Service.GetSpot(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

func (h *ParkingHandler) UpdateSpot(w http.ResponseWriter, r *http.Request) {
	var req UpdateSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Validation("invalid spot data"))
		return
	}

	patch := db.SpotPatch{
		SpotNumber: req.SpotNumber,
		Sector:     req.Sector,
		IsActive:   req.IsActive,
	}
	if req.Status != nil {
		status := db.SpotStatus(*req.Status)
		patch.Status = &status
	}

	spot, err := h.Service.UpdateSpot(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

func (h *ParkingHandler) ReleaseSpot(w http.ResponseWriter, r *http.Request) {
	spot, err := h.Service.ReleaseSpot(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}
