package repository

import (
	"testing"

	"estacioneai/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLotAssignsIdentityAndTimestamp(t *testing.T) {
	store := NewStore()

	lot, err := store.CreateLot(db.ParkingLot{Name: "Shopping Luz", PricePerHour: "6.00", IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, lot.ID)
	assert.False(t, lot.CreatedAt.IsZero())

	got, ok := store.GetLot(lot.ID)
	require.True(t, ok)
	assert.Equal(t, lot, got)
}

func TestGetMissingEntityReturnsFalse(t *testing.T) {
	store := NewStore()

	_, ok := store.GetLot("nope")
	assert.False(t, ok)
	_, ok = store.GetSpot("nope")
	assert.False(t, ok)
	_, ok = store.GetReservation("nope")
	assert.False(t, ok)
}

func TestUpdateSpotMergesPatch(t *testing.T) {
	store := NewStore()

	spot, err := store.CreateSpot(db.ParkingSpot{
		SpotNumber: "A1",
		Sector:     "Setor A",
		Status:     db.SpotAvailable,
		IsActive:   true,
	})
	require.NoError(t, err)

	reserved := db.SpotReserved
	updated, ok := store.UpdateSpot(spot.ID, db.SpotPatch{Status: &reserved})
	require.True(t, ok)

	assert.Equal(t, db.SpotReserved, updated.Status)
	// Fields not named in the patch keep their values, as do ID and CreatedAt.
	assert.Equal(t, spot.ID, updated.ID)
	assert.Equal(t, spot.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "A1", updated.SpotNumber)
	assert.Equal(t, "Setor A", updated.Sector)
	assert.True(t, updated.IsActive)
}

func TestUpdateMissingSpotReportsNotFound(t *testing.T) {
	store := NewStore()

	reserved := db.SpotReserved
	_, ok := store.UpdateSpot("nope", db.SpotPatch{Status: &reserved})
	assert.False(t, ok)
}

func TestListLotsSkipsInactive(t *testing.T) {
	store := NewStore()

	_, err := store.CreateLot(db.ParkingLot{Name: "Open", IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateLot(db.ParkingLot{Name: "Closed", IsActive: false})
	require.NoError(t, err)

	lots := store.ListLots()
	require.Len(t, lots, 1)
	assert.Equal(t, "Open", lots[0].Name)
}

func TestListSpotsFiltersByLot(t *testing.T) {
	store := NewStore()

	lotA, err := store.CreateLot(db.ParkingLot{Name: "A", IsActive: true})
	require.NoError(t, err)
	lotB, err := store.CreateLot(db.ParkingLot{Name: "B", IsActive: true})
	require.NoError(t, err)

	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "A1", ParkingLotID: lotA.ID, Status: db.SpotAvailable, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "B1", ParkingLotID: lotB.ID, Status: db.SpotAvailable, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "B2", ParkingLotID: lotB.ID, Status: db.SpotAvailable, IsActive: false})
	require.NoError(t, err)

	assert.Len(t, store.ListSpots(""), 2)

	spots := store.ListSpots(lotB.ID)
	require.Len(t, spots, 1)
	assert.Equal(t, "B1", spots[0].SpotNumber)
}

func TestListAvailableSpotsFiltersByStatus(t *testing.T) {
	store := NewStore()

	lot, err := store.CreateLot(db.ParkingLot{Name: "A", IsActive: true})
	require.NoError(t, err)

	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "A1", ParkingLotID: lot.ID, Status: db.SpotAvailable, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "A2", ParkingLotID: lot.ID, Status: db.SpotOccupied, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateSpot(db.ParkingSpot{SpotNumber: "A3", ParkingLotID: lot.ID, Status: db.SpotMaintenance, IsActive: true})
	require.NoError(t, err)

	spots := store.ListAvailableSpots(lot.ID)
	require.Len(t, spots, 1)
	assert.Equal(t, "A1", spots[0].SpotNumber)
}

func TestDeleteReservationReportsExistence(t *testing.T) {
	store := NewStore()

	res, err := store.CreateReservation(db.Reservation{SpotID: "spot", Status: db.ReservationPending})
	require.NoError(t, err)

	assert.True(t, store.DeleteReservation(res.ID))
	assert.False(t, store.DeleteReservation(res.ID))

	_, ok := store.GetReservation(res.ID)
	assert.False(t, ok)
}

func TestListReservationsFiltersByUser(t *testing.T) {
	store := NewStore()

	_, err := store.CreateReservation(db.Reservation{SpotID: "s1", UserID: "alice", Status: db.ReservationPending})
	require.NoError(t, err)
	_, err = store.CreateReservation(db.Reservation{SpotID: "s2", UserID: "bob", Status: db.ReservationActive})
	require.NoError(t, err)

	assert.Len(t, store.ListReservations(""), 2)

	mine := store.ListReservations("alice")
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].UserID)
}

func TestLiveReservationForSpot(t *testing.T) {
	store := NewStore()

	_, err := store.CreateReservation(db.Reservation{SpotID: "s1", Status: db.ReservationCancelled})
	require.NoError(t, err)
	_, ok := store.LiveReservationForSpot("s1")
	assert.False(t, ok)

	live, err := store.CreateReservation(db.Reservation{SpotID: "s1", Status: db.ReservationActive})
	require.NoError(t, err)
	got, ok := store.LiveReservationForSpot("s1")
	require.True(t, ok)
	assert.Equal(t, live.ID, got.ID)
}

func TestCreateContactMessageDefaultsStatus(t *testing.T) {
	store := NewStore()

	msg, err := store.CreateContactMessage(db.ContactMessage{Name: "Ana", Email: "ana@example.com", Subject: "Oi", Message: "Olá"})
	require.NoError(t, err)
	assert.Equal(t, "pending", msg.Status)
	assert.NotEmpty(t, msg.ID)
}
