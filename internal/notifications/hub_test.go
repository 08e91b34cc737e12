package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку событий подписчику.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	householdID := uuid.New()

	ch, unsubscribe := hub.Subscribe(householdID)
	defer unsubscribe()

	hub.Publish(householdID, Event{Type: EventLowStock})

	select {
	case event := <-ch:
		if event.Type != EventLowStock {
			t.Fatalf("expected event type %s, got %s", EventLowStock, event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	householdID := uuid.New()

	ch, unsubscribe := hub.Subscribe(householdID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}

// TestHubBroadcast проверяет доставку широковещательного события всем подписчикам.
func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	first, unsubscribeFirst := hub.Subscribe(uuid.New())
	defer unsubscribeFirst()
	second, unsubscribeSecond := hub.Subscribe(uuid.New())
	defer unsubscribeSecond()

	hub.Broadcast(Event{Type: EventMarketPricesUpdate})

	for _, ch := range []<-chan Event{first, second} {
		select {
		case event := <-ch:
			if event.Type != EventMarketPricesUpdate {
				t.Fatalf("expected event type %s, got %s", EventMarketPricesUpdate, event.Type)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatal("expected event to be delivered")
		}
	}
}

// TestHubIsolation проверяет, что события не утекают чужим домохозяйствам.
func TestHubIsolation(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe(uuid.New())
	defer unsubscribe()

	hub.Publish(uuid.New(), Event{Type: EventMealLogged})

	select {
	case event := <-ch:
		t.Fatalf("expected no event, got %+v", event)
	case <-time.After(100 * time.Millisecond):
	}
}
