package ws

import (
	"encoding/json"
	"testing"
	"time"

	"estacioneai/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spotEvent(number string) Event {
	return SpotUpdated(db.ParkingSpot{ID: "spot-" + number, SpotNumber: number, Status: db.SpotReserved})
}

func collect(t *testing.T, sub *Subscriber, n int) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	for len(events) < n {
		select {
		case ev, ok := <-sub.Events():
			require.True(t, ok, "subscription closed early")
			events = append(events, ev)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for events, got %d of %d", len(events), n)
		}
	}
	return events
}

func TestPublishDeliversInOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	hub.Publish(spotEvent("A1"), ReservationCreated(db.Reservation{ID: "r1"}))

	events := collect(t, sub, 2)
	assert.Equal(t, EventSpotUpdated, events[0].Kind)
	assert.Equal(t, EventReservationCreated, events[1].Kind)
}

func TestAllSubscribersSeeSameOrder(t *testing.T) {
	hub := NewHub()
	first := hub.Subscribe()
	second := hub.Subscribe()
	defer hub.Unsubscribe(first)
	defer hub.Unsubscribe(second)

	hub.Publish(spotEvent("A1"))
	hub.Publish(ReservationUpdated(db.Reservation{ID: "r1"}), ReservationDeleted("r2"))

	want := []EventKind{EventSpotUpdated, EventReservationUpdated, EventReservationDeleted}
	for _, sub := range []*Subscriber{first, second} {
		events := collect(t, sub, len(want))
		for i, kind := range want {
			assert.Equal(t, kind, events[i].Kind)
		}
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel should be closed")
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestPublishAfterUnsubscribeDeliversNothing(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	hub.Unsubscribe(sub)

	hub.Publish(spotEvent("A1"))

	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestSlowSubscriberIsDroppedWithoutBlocking(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe()

	// Never drain slow: once its buffer is full the hub must drop it instead
	// of blocking the publisher.
	for i := 0; i < subscriberBuffer+1; i++ {
		hub.Publish(spotEvent("A1"))
	}
	assert.Equal(t, 0, hub.SubscriberCount())

	// Buffered events stay readable, then the channel closes.
	for i := 0; i < subscriberBuffer; i++ {
		collect(t, slow, 1)
	}
	_, ok := <-slow.Events()
	assert.False(t, ok)

	// Later subscribers are unaffected.
	fresh := hub.Subscribe()
	defer hub.Unsubscribe(fresh)
	hub.Publish(spotEvent("B1"))
	events := collect(t, fresh, 1)
	assert.Equal(t, EventSpotUpdated, events[0].Kind)
}

func TestEventWireFormat(t *testing.T) {
	spot := db.ParkingSpot{ID: "s1", SpotNumber: "A1", Status: db.SpotReserved, IsActive: true}

	raw, err := json.Marshal(SpotUpdated(spot))
	require.NoError(t, err)

	var decoded struct {
		Type string `json:"type"`
		Data struct {
			ID         string `json:"id"`
			SpotNumber string `json:"spot_number"`
			Status     string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "spot_updated", decoded.Type)
	assert.Equal(t, "s1", decoded.Data.ID)
	assert.Equal(t, "A1", decoded.Data.SpotNumber)
	assert.Equal(t, "reserved", decoded.Data.Status)
}

func TestDeletionEventCarriesOnlyIdentifier(t *testing.T) {
	raw, err := json.Marshal(ReservationDeleted("r42"))
	require.NoError(t, err)

	var decoded struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "reservation_deleted", decoded.Type)
	assert.Equal(t, map[string]string{"id": "r42"}, decoded.Data)
}
