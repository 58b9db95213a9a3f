package hub

import (
	"sync"
	"testing"

	"nurse-call-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndDeliver(t *testing.T) {
	h := New()

	ch := h.Register(7)
	require.True(t, h.Connected(7))

	delivered := h.Deliver(7, models.Call{ID: 42, NurseID: 7})
	assert.True(t, delivered)

	got := <-ch
	assert.Equal(t, uint(42), got.ID)
}

func TestDeliverWithoutSubscriber(t *testing.T) {
	h := New()

	delivered := h.Deliver(1, models.Call{ID: 1, NurseID: 1})
	assert.False(t, delivered)
}

func TestLastSubscriberWins(t *testing.T) {
	h := New()

	first := h.Register(3)
	second := h.Register(3)

	// the first channel is closed when it is replaced
	_, open := <-first
	assert.False(t, open)

	require.True(t, h.Deliver(3, models.Call{ID: 9, NurseID: 3}))
	got := <-second
	assert.Equal(t, uint(9), got.ID)
}

func TestUnregisterRemovesSubscription(t *testing.T) {
	h := New()

	ch := h.Register(5)
	h.Unregister(5, ch)

	assert.False(t, h.Connected(5))
	_, open := <-ch
	assert.False(t, open)
}

func TestStaleUnregisterKeepsNewerSubscription(t *testing.T) {
	h := New()

	old := h.Register(5)
	current := h.Register(5)

	// a disconnect handler holding the replaced channel must not tear
	// down the live one
	h.Unregister(5, old)
	assert.True(t, h.Connected(5))

	require.True(t, h.Deliver(5, models.Call{ID: 1, NurseID: 5}))
	got := <-current
	assert.Equal(t, uint(1), got.ID)
}

func TestFullBufferDropsSubscriber(t *testing.T) {
	h := New()

	h.Register(2)
	for i := 0; i < subscriberBuffer; i++ {
		require.True(t, h.Deliver(2, models.Call{ID: uint(i + 1), NurseID: 2}))
	}

	// the consumer never drained, so the next delivery treats it as gone
	assert.False(t, h.Deliver(2, models.Call{ID: 99, NurseID: 2}))
	assert.False(t, h.Connected(2))
}

func TestConcurrentRegisterAndDeliver(t *testing.T) {
	h := New()

	var wg sync.WaitGroup
	for n := uint(1); n <= 64; n++ {
		ch := h.Register(n)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range ch {
			}
		}()
		go func(id uint, ch chan models.Call) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				h.Deliver(id, models.Call{ID: uint(i + 1), NurseID: id})
			}
			h.Unregister(id, ch)
		}(n, ch)
	}
	wg.Wait()
}
