package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Типы событий кухонного планировщика.
const (
	EventInventoryUpdated   = "inventory_updated"
	EventLowStock           = "low_stock"
	EventMealLogged         = "meal_logged"
	EventPredictionsUpdated = "predictions_updated"
	EventMarketPricesUpdate = "market_prices_updated"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
}

// NewHub создает хаб для SSE-подписок.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe подписывает домохозяйство на события и возвращает канал и функцию отписки.
func (h *Hub) Subscribe(householdID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, 10)

	h.mu.Lock()
	defer h.mu.Unlock()

	householdSubs, ok := h.subscribers[householdID]
	if !ok {
		householdSubs = make(map[chan Event]struct{})
		h.subscribers[householdID] = householdSubs
	}
	householdSubs[ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subs, exists := h.subscribers[householdID]; exists {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, householdID)
			}
		}
		close(ch)
	}
}

// Publish отправляет событие всем подписчикам домохозяйства.
// Медленные подписчики событие теряют, хаб не блокируется.
func (h *Hub) Publish(householdID uuid.UUID, event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	subs, ok := h.subscribers[householdID]
	if !ok {
		return
	}

	for ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Broadcast отправляет событие всем подписчикам всех домохозяйств.
func (h *Hub) Broadcast(event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, subs := range h.subscribers {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
