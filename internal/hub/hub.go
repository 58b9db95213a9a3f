// Package hub holds the in-process registry of live call subscribers.
// Each nurse has at most one open subscription; the registry is sharded so
// register/unregister/deliver for unrelated nurses never contend on the
// same lock. The hub is process-local: scaling beyond one process means
// replacing it with a shared broker behind the same API.
package hub

import (
	"sync"

	"nurse-call-backend/internal/models"
)

const (
	shardCount = 32
	// channel buffer per subscriber; a consumer that falls this far behind
	// is treated as disconnected
	subscriberBuffer = 16
)

type shard struct {
	mu   sync.Mutex
	subs map[uint]chan models.Call
}

// Hub maps nurse ids to their live subscription channel.
type Hub struct {
	shards [shardCount]*shard
}

func New() *Hub {
	h := &Hub{}
	for i := range h.shards {
		h.shards[i] = &shard{subs: make(map[uint]chan models.Call)}
	}
	return h
}

func (h *Hub) shardFor(nurseID uint) *shard {
	return h.shards[nurseID%shardCount]
}

// Register opens a subscription for a nurse and returns its channel.
// A prior subscription for the same nurse is closed and replaced
// (last subscriber wins).
func (h *Hub) Register(nurseID uint) chan models.Call {
	s := h.shardFor(nurseID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.subs[nurseID]; ok {
		close(old)
	}
	ch := make(chan models.Call, subscriberBuffer)
	s.subs[nurseID] = ch
	return ch
}

// Unregister closes a subscription. The channel is only removed if it is
// still the current one, so a stale unregister cannot tear down a newer
// subscription for the same nurse.
func (h *Hub) Unregister(nurseID uint, ch chan models.Call) {
	s := h.shardFor(nurseID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.subs[nurseID]; ok && current == ch {
		delete(s.subs, nurseID)
		close(current)
	}
}

// Deliver sends a call to the nurse's live subscription, if any. Delivery
// is best-effort: no subscription is not an error, and a subscriber whose
// buffer is full is dropped as an implicit disconnect. Returns whether the
// call was handed to a live channel.
func (h *Hub) Deliver(nurseID uint, call models.Call) bool {
	s := h.shardFor(nurseID)
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.subs[nurseID]
	if !ok {
		return false
	}

	select {
	case ch <- call:
		return true
	default:
		// broken or stalled consumer, treat as disconnected
		delete(s.subs, nurseID)
		close(ch)
		return false
	}
}

// Connected reports whether a nurse currently has a live subscription.
func (h *Hub) Connected(nurseID uint) bool {
	s := h.shardFor(nurseID)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[nurseID]
	return ok
}
