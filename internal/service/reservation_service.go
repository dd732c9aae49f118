package service

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"estacioneai/internal/db"
	"estacioneai/internal/errors"
	"estacioneai/internal/repository"
	"estacioneai/internal/ws"
)

// ReservationService owns the reservation lifecycle and the administrative
// spot transitions. Every command runs as one critical section under mu so a
// concurrent pair of bookings cannot both observe an available spot; events
// and emails go out only after the section commits.
type ReservationService struct {
	mu     sync.Mutex
	repo   *repository.Store
	hub    *ws.Hub
	sender *SenderService
}

func NewReservationService(repo *repository.Store, hub *ws.Hub, sender *SenderService) *ReservationService {
	return &ReservationService{repo: repo, hub: hub, sender: sender}
}

// Queries

func (s *ReservationService) ListLots() []db.ParkingLot {
	return s.repo.ListLots()
}

func (s *ReservationService) GetLot(id string) (db.ParkingLot, error) {
	lot, ok := s.repo.GetLot(id)
	if !ok {
		return db.ParkingLot{}, errors.NotFound("parking lot not found")
	}
	return lot, nil
}

func (s *ReservationService) ListSpots(lotID string) []db.ParkingSpot {
	return s.repo.ListSpots(lotID)
}

func (s *ReservationService) ListAvailableSpots(lotID string) []db.ParkingSpot {
	return s.repo.ListAvailableSpots(lotID)
}

func (s *ReservationService) GetSpot(id string) (db.ParkingSpot, error) {
	spot, ok := s.repo.GetSpot(id)
	if !ok {
		return db.ParkingSpot{}, errors.NotFound("parking spot not found")
	}
	return spot, nil
}

func (s *ReservationService) ListReservations(userID string) []db.Reservation {
	return s.repo.ListReservations(userID)
}

func (s *ReservationService) GetReservation(id string) (db.Reservation, error) {
	res, ok := s.repo.GetReservation(id)
	if !ok {
		return db.Reservation{}, errors.NotFound("reservation not found")
	}
	return res, nil
}

// Commands

type CreateReservationInput struct {
	SpotID    string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
	// Email is an optional recipient for the confirmation message.
	Email string
	// Phone is an optional recipient for the confirmation SMS, E.164.
	Phone string
}

// CreateReservation books an available spot: the spot moves to reserved and a
// pending reservation is inserted, as one atomic step. On success a
// spot_updated then a reservation_created event are published.
func (s *ReservationService) CreateReservation(in CreateReservationInput) (db.Reservation, error) {
	if in.SpotID == "" {
		return db.Reservation{}, errors.Validation("spot_id is required")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return db.Reservation{}, errors.Validation("start_time and end_time are required")
	}
	if !in.EndTime.After(in.StartTime) {
		return db.Reservation{}, errors.InvalidInterval("end_time must be after start_time")
	}

	s.mu.Lock()
	spot, ok := s.repo.GetSpot(in.SpotID)
	if !ok {
		s.mu.Unlock()
		return db.Reservation{}, errors.NotFound("parking spot not found")
	}
	if !spot.IsActive || spot.Status != db.SpotAvailable {
		s.mu.Unlock()
		return db.Reservation{}, errors.SpotUnavailable("parking spot is not available")
	}

	price, err := s.hourlyPrice(spot.ParkingLotID)
	if err != nil {
		s.mu.Unlock()
		return db.Reservation{}, err
	}

	reserved := db.SpotReserved
	updatedSpot, _ := s.repo.UpdateSpot(spot.ID, db.SpotPatch{Status: &reserved})

	res, err := s.repo.CreateReservation(db.Reservation{
		UserID:    in.UserID,
		SpotID:    in.SpotID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    db.ReservationPending,
		TotalCost: totalCost(in.StartTime, in.EndTime, price),
	})
	if err != nil {
		// Roll the spot back so the failed insert leaves no trace.
		available := db.SpotAvailable
		s.repo.UpdateSpot(spot.ID, db.SpotPatch{Status: &available})
		s.mu.Unlock()
		return db.Reservation{}, fmt.Errorf("creating reservation: %w", err)
	}
	s.mu.Unlock()

	s.hub.Publish(ws.SpotUpdated(updatedSpot), ws.ReservationCreated(res))

	if in.Email != "" || in.Phone != "" {
		s.sender.SendReservationConfirmation(in.Email, in.Phone, updatedSpot.SpotNumber, res)
	}
	return res, nil
}

// UpdateReservation applies a partial patch, primarily a status change.
// Cancelling frees the spot unless an operator moved it to occupied or
// maintenance in the meantime; cancelling twice is a no-op.
func (s *ReservationService) UpdateReservation(id string, patch db.ReservationPatch) (db.Reservation, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return db.Reservation{}, errors.Validation("unknown reservation status")
	}

	s.mu.Lock()
	current, ok := s.repo.GetReservation(id)
	if !ok {
		s.mu.Unlock()
		return db.Reservation{}, errors.NotFound("reservation not found")
	}

	start, end := current.StartTime, current.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if !end.After(start) {
		s.mu.Unlock()
		return db.Reservation{}, errors.InvalidInterval("end_time must be after start_time")
	}

	cancelling := patch.Status != nil && *patch.Status == db.ReservationCancelled
	if cancelling && current.Status == db.ReservationCancelled {
		// Already cancelled: no state change, no duplicate events.
		s.mu.Unlock()
		return current, nil
	}
	// Completed and cancelled are terminal: reviving a reservation would let a
	// second live one claim a spot that has since been rebooked.
	if patch.Status != nil && *patch.Status != current.Status && current.Status.Terminal() {
		s.mu.Unlock()
		return db.Reservation{}, errors.Validation("reservation is " + string(current.Status) + " and cannot change status")
	}

	updated, _ := s.repo.UpdateReservation(id, patch)

	var freedSpot *db.ParkingSpot
	if cancelling {
		freedSpot = s.freeSpotLocked(current.SpotID)
	}
	s.mu.Unlock()

	events := make([]ws.Event, 0, 2)
	if freedSpot != nil {
		events = append(events, ws.SpotUpdated(*freedSpot))
	}
	events = append(events, ws.ReservationUpdated(updated))
	s.hub.Publish(events...)

	return updated, nil
}

// CancelReservation is shorthand for patching the status to cancelled.
func (s *ReservationService) CancelReservation(id string) (db.Reservation, error) {
	cancelled := db.ReservationCancelled
	return s.UpdateReservation(id, db.ReservationPatch{Status: &cancelled})
}

// DeleteReservation removes the record entirely, freeing the spot first when
// the reservation had not already been cancelled.
func (s *ReservationService) DeleteReservation(id string) error {
	s.mu.Lock()
	current, ok := s.repo.GetReservation(id)
	if !ok {
		s.mu.Unlock()
		return errors.NotFound("reservation not found")
	}

	var freedSpot *db.ParkingSpot
	if current.Status != db.ReservationCancelled {
		freedSpot = s.freeSpotLocked(current.SpotID)
	}
	s.repo.DeleteReservation(id)
	s.mu.Unlock()

	events := make([]ws.Event, 0, 2)
	if freedSpot != nil {
		events = append(events, ws.SpotUpdated(*freedSpot))
	}
	events = append(events, ws.ReservationDeleted(id))
	s.hub.Publish(events...)

	return nil
}

// UpdateSpot applies an administrative patch to a spot. Releasing a spot to
// available is refused while a pending or active reservation still claims it;
// use the reservation lifecycle for that.
func (s *ReservationService) UpdateSpot(id string, patch db.SpotPatch) (db.ParkingSpot, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return db.ParkingSpot{}, errors.Validation("unknown spot status")
	}

	s.mu.Lock()
	if _, ok := s.repo.GetSpot(id); !ok {
		s.mu.Unlock()
		return db.ParkingSpot{}, errors.NotFound("parking spot not found")
	}
	if patch.Status != nil && *patch.Status == db.SpotAvailable {
		if _, live := s.repo.LiveReservationForSpot(id); live {
			s.mu.Unlock()
			return db.ParkingSpot{}, errors.ReservationInProgress("spot has a reservation in progress")
		}
	}
	updated, _ := s.repo.UpdateSpot(id, patch)
	s.mu.Unlock()

	s.hub.Publish(ws.SpotUpdated(updated))
	return updated, nil
}

// ReleaseSpot sets a spot back to available, refusing while a pending or
// active reservation references it.
func (s *ReservationService) ReleaseSpot(id string) (db.ParkingSpot, error) {
	available := db.SpotAvailable
	return s.UpdateSpot(id, db.SpotPatch{Status: &available})
}

// CompleteExpiredReservations marks active reservations whose end time has
// passed as completed and returns how many were updated.
func (s *ReservationService) CompleteExpiredReservations(now time.Time) int {
	s.mu.Lock()
	var updated []db.Reservation
	for _, res := range s.repo.ListReservations("") {
		if res.Status == db.ReservationActive && res.EndTime.Before(now) {
			completed := db.ReservationCompleted
			if u, ok := s.repo.UpdateReservation(res.ID, db.ReservationPatch{Status: &completed}); ok {
				updated = append(updated, u)
			}
		}
	}
	s.mu.Unlock()

	for _, res := range updated {
		s.hub.Publish(ws.ReservationUpdated(res))
	}
	return len(updated)
}

// freeSpotLocked re-derives the spot's state rather than blindly overwriting:
// only a spot still marked reserved goes back to available, so an operator
// transition to occupied or maintenance survives. Must be called with s.mu
// held; returns the updated spot or nil when nothing changed.
func (s *ReservationService) freeSpotLocked(spotID string) *db.ParkingSpot {
	spot, ok := s.repo.GetSpot(spotID)
	if !ok || spot.Status != db.SpotReserved {
		return nil
	}
	available := db.SpotAvailable
	updated, _ := s.repo.UpdateSpot(spotID, db.SpotPatch{Status: &available})
	return &updated
}

// hourlyPrice resolves the owning lot's rate. A missing lot or an unparsable
// price fails with PricingUnavailable instead of silently falling back to a
// flat rate.
func (s *ReservationService) hourlyPrice(lotID string) (float64, error) {
	lot, ok := s.repo.GetLot(lotID)
	if !ok {
		return 0, errors.PricingUnavailable("owning lot not found, cannot price reservation")
	}
	price, err := strconv.ParseFloat(lot.PricePerHour, 64)
	if err != nil || price < 0 {
		return 0, errors.PricingUnavailable("lot has no resolvable hourly price")
	}
	return price, nil
}

// totalCost computes (durationMinutes / 60) * pricePerHour, half-up rounded
// to two decimals.
func totalCost(start, end time.Time, pricePerHour float64) string {
	hours := end.Sub(start).Minutes() / 60
	total := math.Round(hours*pricePerHour*100) / 100
	return strconv.FormatFloat(total, 'f', 2, 64)
}
