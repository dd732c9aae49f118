package ws

import (
	"encoding/json"

	"estacioneai/internal/db"
)

type EventKind string

const (
	EventSpotUpdated        EventKind = "spot_updated"
	EventReservationCreated EventKind = "reservation_created"
	EventReservationUpdated EventKind = "reservation_updated"
	EventReservationDeleted EventKind = "reservation_deleted"
)

// Event is a tagged union over the four broadcast kinds. Exactly one payload
// field is set, matching Kind, so consumers can switch on Kind without type
// assertions.
type Event struct {
	Kind        EventKind
	Spot        *db.ParkingSpot
	Reservation *db.Reservation
	DeletedID   string
}

func SpotUpdated(spot db.ParkingSpot) Event {
	return Event{Kind: EventSpotUpdated, Spot: &spot}
}

func ReservationCreated(res db.Reservation) Event {
	return Event{Kind: EventReservationCreated, Reservation: &res}
}

func ReservationUpdated(res db.Reservation) Event {
	return Event{Kind: EventReservationUpdated, Reservation: &res}
}

func ReservationDeleted(id string) Event {
	return Event{Kind: EventReservationDeleted, DeletedID: id}
}

type wireEvent struct {
	Type EventKind   `json:"type"`
	Data interface{} `json:"data"`
}

// MarshalJSON renders the event in the {"type": ..., "data": ...} shape the
// web client consumes.
func (e Event) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch e.Kind {
	case EventSpotUpdated:
		data = e.Spot
	case EventReservationCreated, EventReservationUpdated:
		data = e.Reservation
	case EventReservationDeleted:
		data = map[string]string{"id": e.DeletedID}
	}
	return json.Marshal(wireEvent{Type: e.Kind, Data: data})
}
