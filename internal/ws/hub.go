package ws

import (
	"log"
	"sync"
)

// subscriberBuffer bounds how far a slow observer may fall behind before the
// hub drops it.
const subscriberBuffer = 64

// Subscriber is one connected observer. Events arrive on Events() in publish
// order until the subscriber is unsubscribed or dropped, at which point the
// channel is closed.
type Subscriber struct {
	events chan Event
}

func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Hub fans every published event out to all current subscribers.
// Delivery is fire-and-forget: a subscriber whose buffer is full is dropped
// rather than allowed to block the publisher.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscriber]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
	}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{events: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	h.subscribers[sub] = true
	total := len(h.subscribers)
	h.mu.Unlock()

	log.Printf("Event subscriber connected. Total: %d", total)
	return sub
}

// Unsubscribe removes the subscriber and closes its channel. Calling it for a
// subscriber that is already gone is a no-op.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sub)
}

// Publish delivers events to every subscriber in the order given. Events from
// a single call are never interleaved with another Publish, so all observers
// see the same relative order.
func (h *Hub) Publish(events ...Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, event := range events {
		for sub := range h.subscribers {
			select {
			case sub.events <- event:
			default:
				log.Printf("Event subscriber too slow, dropping it")
				h.remove(sub)
			}
		}
	}
}

// SubscriberCount returns the number of currently connected observers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscriber) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.events)
}
