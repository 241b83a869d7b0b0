package events_test

import (
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/events"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *events.Subscription) *models.AdminStats {
	t.Helper()
	select {
	case stats, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return stats
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stats")
		return nil
	}
}

func TestStatsBroker(t *testing.T) {
	t.Run("Publish reaches every subscriber", func(t *testing.T) {
		broker := events.NewStatsBroker()
		a := broker.Subscribe()
		b := broker.Subscribe()
		defer a.Unsubscribe()
		defer b.Unsubscribe()

		broker.Publish(&models.AdminStats{TotalOrders: 1})

		assert.Equal(t, 1, receive(t, a).TotalOrders)
		assert.Equal(t, 1, receive(t, b).TotalOrders)
	})

	t.Run("Slow subscriber only sees the latest value", func(t *testing.T) {
		broker := events.NewStatsBroker()
		sub := broker.Subscribe()
		defer sub.Unsubscribe()

		for i := 1; i <= 5; i++ {
			broker.Publish(&models.AdminStats{TotalOrders: i})
		}

		assert.Equal(t, 5, receive(t, sub).TotalOrders)
		select {
		case <-sub.C:
			t.Fatal("expected no further values")
		default:
		}
	})

	t.Run("Unsubscribe is idempotent and closes the channel", func(t *testing.T) {
		broker := events.NewStatsBroker()
		sub := broker.Subscribe()
		require.Equal(t, 1, broker.Subscribers())

		sub.Unsubscribe()
		sub.Unsubscribe()

		_, ok := <-sub.C
		assert.False(t, ok)
		assert.Equal(t, 0, broker.Subscribers())

		assert.NotPanics(t, func() { broker.Publish(&models.AdminStats{}) })
	})

	t.Run("Publish without subscribers", func(t *testing.T) {
		broker := events.NewStatsBroker()
		assert.NotPanics(t, func() { broker.Publish(&models.AdminStats{}) })
	})

	t.Run("Close ends subscriptions", func(t *testing.T) {
		broker := events.NewStatsBroker()
		sub := broker.Subscribe()

		broker.Close()
		broker.Close()

		_, ok := <-sub.C
		assert.False(t, ok)
		assert.NotPanics(t, sub.Unsubscribe)

		late := broker.Subscribe()
		_, ok = <-late.C
		assert.False(t, ok)
	})

	t.Run("Concurrent publish and unsubscribe", func(t *testing.T) {
		broker := events.NewStatsBroker()

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(2)
			sub := broker.Subscribe()
			go func() {
				defer wg.Done()
				for range 50 {
					broker.Publish(&models.AdminStats{})
				}
			}()
			go func() {
				defer wg.Done()
				sub.Unsubscribe()
			}()
		}
		wg.Wait()

		assert.Equal(t, 0, broker.Subscribers())
	})
}
