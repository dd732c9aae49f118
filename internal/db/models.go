package db

import "time"

type SpotStatus string

const (
	SpotAvailable   SpotStatus = "available"
	SpotOccupied    SpotStatus = "occupied"
	SpotReserved    SpotStatus = "reserved"
	SpotMaintenance SpotStatus = "maintenance"
)

func (s SpotStatus) Valid() bool {
	switch s {
	case SpotAvailable, SpotOccupied, SpotReserved, SpotMaintenance:
		return true
	}
	return false
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationActive, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Live reports whether a reservation in this status still claims its spot.
func (s ReservationStatus) Live() bool {
	return s == ReservationPending || s == ReservationActive
}

// Terminal reports whether this status ends the lifecycle: the state machine
// has no edge out of completed or cancelled.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

type ParkingLot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address"`
	Latitude     string    `json:"latitude"`
	Longitude    string    `json:"longitude"`
	TotalSpots   int       `json:"total_spots"`
	PricePerHour string    `json:"price_per_hour"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ParkingSpot struct {
	ID           string     `json:"id"`
	SpotNumber   string     `json:"spot_number"`
	Sector       string     `json:"sector"`
	ParkingLotID string     `json:"parking_lot_id"`
	Status       SpotStatus `json:"status"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Reservation struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id,omitempty"`
	SpotID    string            `json:"spot_id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Status    ReservationStatus `json:"status"`
	TotalCost string            `json:"total_cost"`
	CreatedAt time.Time         `json:"created_at"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch types carry partial updates. A nil field leaves the stored value
// untouched; ID and CreatedAt can never be patched.

type LotPatch struct {
	Name         *string
	Description  *string
	PricePerHour *string
	IsActive     *bool
}

type SpotPatch struct {
	SpotNumber *string
	Sector     *string
	Status     *SpotStatus
	IsActive   *bool
}

type ReservationPatch struct {
	UserID    *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *ReservationStatus
	TotalCost *string
}

type ContactMessagePatch struct {
	Status *string
}
