package repository

import (
	"fmt"
	"sync"
	"time"

	"estacioneai/internal/db"

	"github.com/google/uuid"
)

// Store is the in-memory system of record for lots, spots, reservations and
// contact messages. Every method takes the store lock, so individual calls
// are atomic; compound read-check-write sequences are serialized by the
// service layer on top.
type Store struct {
	mu              sync.RWMutex
	lots            map[string]db.ParkingLot
	spots           map[string]db.ParkingSpot
	reservations    map[string]db.Reservation
	contactMessages map[string]db.ContactMessage
	now             func() time.Time
}

func NewStore() *Store {
	return &Store{
		lots:            make(map[string]db.ParkingLot),
		spots:           make(map[string]db.ParkingSpot),
		reservations:    make(map[string]db.Reservation),
		contactMessages: make(map[string]db.ContactMessage),
		now:             time.Now,
	}
}

// Parking lots

func (s *Store) CreateLot(lot db.ParkingLot) (db.ParkingLot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot.ID = uuid.NewString()
	lot.CreatedAt = s.now()
	if _, exists := s.lots[lot.ID]; exists {
		return db.ParkingLot{}, fmt.Errorf("duplicate lot id %s", lot.ID)
	}
	s.lots[lot.ID] = lot
	return lot, nil
}

func (s *Store) GetLot(id string) (db.ParkingLot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lot, ok := s.lots[id]
	return lot, ok
}

// ListLots returns all active lots, in no particular order.
func (s *Store) ListLots() []db.ParkingLot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lots := make([]db.ParkingLot, 0, len(s.lots))
	for _, lot := range s.lots {
		if lot.IsActive {
			lots = append(lots, lot)
		}
	}
	return lots
}

func (s *Store) UpdateLot(id string, patch db.LotPatch) (db.ParkingLot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot, ok := s.lots[id]
	if !ok {
		return db.ParkingLot{}, false
	}
	if patch.Name != nil {
		lot.Name = *patch.Name
	}
	if patch.Description != nil {
		lot.Description = *patch.Description
	}
	if patch.PricePerHour != nil {
		lot.PricePerHour = *patch.PricePerHour
	}
	if patch.IsActive != nil {
		lot.IsActive = *patch.IsActive
	}
	s.lots[id] = lot
	return lot, true
}

// Parking spots

func (s *Store) CreateSpot(spot db.ParkingSpot) (db.ParkingSpot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spot.ID = uuid.NewString()
	spot.CreatedAt = s.now()
	if _, exists := s.spots[spot.ID]; exists {
		return db.ParkingSpot{}, fmt.Errorf("duplicate spot id %s", spot.ID)
	}
	s.spots[spot.ID] = spot
	return spot, nil
}

func (s *Store) GetSpot(id string) (db.ParkingSpot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spot, ok := s.spots[id]
	return spot, ok
}

// ListSpots returns active spots, optionally restricted to one lot.
// An empty lotID means all lots.
func (s *Store) ListSpots(lotID string) []db.ParkingSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spots := make([]db.ParkingSpot, 0, len(s.spots))
	for _, spot := range s.spots {
		if !spot.IsActive {
			continue
		}
		if lotID != "" && spot.ParkingLotID != lotID {
			continue
		}
		spots = append(spots, spot)
	}
	return spots
}

// ListAvailableSpots returns active spots whose status is available,
// optionally restricted to one lot.
func (s *Store) ListAvailableSpots(lotID string) []db.ParkingSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spots := make([]db.ParkingSpot, 0)
	for _, spot := range s.spots {
		if !spot.IsActive || spot.Status != db.SpotAvailable {
			continue
		}
		if lotID != "" && spot.ParkingLotID != lotID {
			continue
		}
		spots = append(spots, spot)
	}
	return spots
}

func (s *Store) UpdateSpot(id string, patch db.SpotPatch) (db.ParkingSpot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spot, ok := s.spots[id]
	if !ok {
		return db.ParkingSpot{}, false
	}
	if patch.SpotNumber != nil {
		spot.SpotNumber = *patch.SpotNumber
	}
	if patch.Sector != nil {
		spot.Sector = *patch.Sector
	}
	if patch.Status != nil {
		spot.Status = *patch.Status
	}
	if patch.IsActive != nil {
		spot.IsActive = *patch.IsActive
	}
	s.spots[id] = spot
	return spot, true
}

// Reservations

func (s *Store) CreateReservation(res db.Reservation) (db.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = uuid.NewString()
	res.CreatedAt = s.now()
	if _, exists := s.reservations[res.ID]; exists {
		return db.Reservation{}, fmt.Errorf("duplicate reservation id %s", res.ID)
	}
	s.reservations[res.ID] = res
	return res, nil
}

func (s *Store) GetReservation(id string) (db.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[id]
	return res, ok
}

// ListReservations returns reservations, optionally restricted to one user.
// An empty userID means all reservations.
func (s *Store) ListReservations(userID string) []db.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := make([]db.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		if userID != "" && res.UserID != userID {
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations
}

// LiveReservationForSpot returns the reservation currently claiming the spot,
// i.e. one whose status is pending or active.
func (s *Store) LiveReservationForSpot(spotID string) (db.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, res := range s.reservations {
		if res.SpotID == spotID && res.Status.Live() {
			return res, true
		}
	}
	return db.Reservation{}, false
}

func (s *Store) UpdateReservation(id string, patch db.ReservationPatch) (db.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return db.Reservation{}, false
	}
	if patch.UserID != nil {
		res.UserID = *patch.UserID
	}
	if patch.StartTime != nil {
		res.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		res.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		res.Status = *patch.Status
	}
	if patch.TotalCost != nil {
		res.TotalCost = *patch.TotalCost
	}
	s.reservations[id] = res
	return res, true
}

// DeleteReservation removes the record and reports whether it existed.
func (s *Store) DeleteReservation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return false
	}
	delete(s.reservations, id)
	return true
}

// Contact messages

func (s *Store) CreateContactMessage(msg db.ContactMessage) (db.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = uuid.NewString()
	msg.CreatedAt = s.now()
	if msg.Status == "" {
		msg.Status = "pending"
	}
	if _, exists := s.contactMessages[msg.ID]; exists {
		return db.ContactMessage{}, fmt.Errorf("duplicate contact message id %s", msg.ID)
	}
	s.contactMessages[msg.ID] = msg
	return msg, nil
}

func (s *Store) GetContactMessage(id string) (db.ContactMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.contactMessages[id]
	return msg, ok
}

func (s *Store) ListContactMessages() []db.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]db.ContactMessage, 0, len(s.contactMessages))
	for _, msg := range s.contactMessages {
		messages = append(messages, msg)
	}
	return messages
}

func (s *Store) UpdateContactMessage(id string, patch db.ContactMessagePatch) (db.ContactMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.contactMessages[id]
	if !ok {
		return db.ContactMessage{}, false
	}
	if patch.Status != nil {
		msg.Status = *patch.Status
	}
	s.contactMessages[id] = msg
	return msg, true
}
