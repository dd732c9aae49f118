package service

import (
	"testing"
	"time"

	"estacioneai/internal/db"
	"estacioneai/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmptyStore(t *testing.T) {
	stats := NewStatsService(repository.NewStore()).DashboardStats(time.Now())

	assert.Equal(t, 0, stats.TotalSpots)
	// No division by zero: an empty store reports 0% occupancy.
	assert.Equal(t, 0, stats.OccupancyRate)
}

func TestDashboardStatsCounts(t *testing.T) {
	store := repository.NewStore()
	svc := NewStatsService(store)

	lot, err := store.CreateLot(db.ParkingLot{Name: "A", PricePerHour: "6.00", IsActive: true})
	require.NoError(t, err)

	statuses := []db.SpotStatus{
		db.SpotAvailable, db.SpotAvailable,
		db.SpotOccupied,
		db.SpotReserved,
		db.SpotMaintenance,
	}
	for i, status := range statuses {
		_, err := store.CreateSpot(db.ParkingSpot{
			SpotNumber:   string(rune('A' + i)),
			ParkingLotID: lot.ID,
			Status:       status,
			IsActive:     true,
		})
		require.NoError(t, err)
	}
	// Inactive spots never count.
	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "Z", ParkingLotID: lot.ID, Status: db.SpotOccupied, IsActive: false})
	require.NoError(t, err)

	_, err = store.CreateReservation(db.Reservation{SpotID: "s1", Status: db.ReservationActive})
	require.NoError(t, err)
	_, err = store.CreateReservation(db.Reservation{SpotID: "s2", Status: db.ReservationCancelled})
	require.NoError(t, err)

	stats := svc.DashboardStats(time.Now())

	assert.Equal(t, 5, stats.TotalSpots)
	assert.Equal(t, 2, stats.AvailableSpots)
	assert.Equal(t, 1, stats.OccupiedSpots)
	assert.Equal(t, 1, stats.ReservedSpots)
	assert.Equal(t, 1, stats.MaintenanceSpots)
	assert.Equal(t, 1, stats.ActiveReservations)
	// Both reservations were created just now, so both count as today's.
	assert.Equal(t, 2, stats.TodayReservations)
	// 1 occupied of 5 spots, rounded.
	assert.Equal(t, 20, stats.OccupancyRate)
	assert.GreaterOrEqual(t, stats.OccupancyRate, 0)
	assert.LessOrEqual(t, stats.OccupancyRate, 100)
}

func TestTodayReservationsUsesCalendarDay(t *testing.T) {
	store := repository.NewStore()
	svc := NewStatsService(store)

	_, err := store.CreateReservation(db.Reservation{SpotID: "s1", Status: db.ReservationPending})
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, 1, svc.DashboardStats(now).TodayReservations)
	assert.Equal(t, 0, svc.DashboardStats(now.AddDate(0, 0, 1)).TodayReservations)
}
