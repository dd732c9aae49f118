package service

import (
	"math"
	"time"

	"estacioneai/internal/db"
	"estacioneai/internal/repository"
)

type DashboardStats struct {
	TotalSpots         int `json:"total_spots"`
	AvailableSpots     int `json:"available_spots"`
	OccupiedSpots      int `json:"occupied_spots"`
	ReservedSpots      int `json:"reserved_spots"`
	MaintenanceSpots   int `json:"maintenance_spots"`
	ActiveReservations int `json:"active_reservations"`
	TodayReservations  int `json:"today_reservations"`
	OccupancyRate      int `json:"occupancy_rate"`
}

// StatsService derives dashboard metrics from the current store contents.
// It is read-only and never mutates state.
type StatsService struct {
	repo *repository.Store
}

func NewStatsService(repo *repository.Store) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) DashboardStats(now time.Time) DashboardStats {
	stats := DashboardStats{}

	for _, spot := range s.repo.ListSpots("") {
		stats.TotalSpots++
		switch spot.Status {
		case db.SpotAvailable:
			stats.AvailableSpots++
		case db.SpotOccupied:
			stats.OccupiedSpots++
		case db.SpotReserved:
			stats.ReservedSpots++
		case db.SpotMaintenance:
			stats.MaintenanceSpots++
		}
	}

	for _, res := range s.repo.ListReservations("") {
		if res.Status == db.ReservationActive {
			stats.ActiveReservations++
		}
		if sameDay(res.CreatedAt, now) {
			stats.TodayReservations++
		}
	}

	// Guard the empty store: a lot with no spots reports 0%, not NaN.
	if stats.TotalSpots > 0 {
		rate := float64(stats.OccupiedSpots) / float64(stats.TotalSpots) * 100
		stats.OccupancyRate = int(math.Round(rate))
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
