package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/notifications"
)

type NotificationHandler struct {
	Hub *notifications.Hub
}

// NewNotificationHandler создает SSE-обработчик уведомлений.
func NewNotificationHandler(hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{Hub: hub}
}

// Stream открывает SSE-поток событий для домохозяйства.
func (h *NotificationHandler) Stream(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return serverError(c)
	}

	ch, unsubscribe := h.Hub.Subscribe(householdID)
	defer unsubscribe()

	_ = writeSSE(c, notifications.Event{Type: "connected", Data: map[string]string{"household_id": householdID.String()}})
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeSSE(c, event); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeSSE(c echo.Context, event notifications.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := c.Response().Write([]byte("event: " + event.Type + "\n")); err != nil {
		return err
	}
	if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
		return err
	}

	return nil
}

func publishLowStock(hub *notifications.Hub, householdID uuid.UUID, items []models.InventoryItem) {
	if hub == nil || len(items) == 0 {
		return
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	hub.Publish(householdID, notifications.Event{
		Type: notifications.EventLowStock,
		Data: map[string]interface{}{
			"items": names,
			"count": len(names),
		},
	})
}

func publishInventoryUpdate(hub *notifications.Hub, householdID uuid.UUID, itemName string, quantity float64) {
	if hub == nil {
		return
	}

	hub.Publish(householdID, notifications.Event{
		Type: notifications.EventInventoryUpdated,
		Data: map[string]interface{}{
			"item":     itemName,
			"quantity": quantity,
		},
	})
}

func publishMealLogged(hub *notifications.Hub, householdID uuid.UUID, mealName string, itemCount int) {
	if hub == nil {
		return
	}

	hub.Publish(householdID, notifications.Event{
		Type: notifications.EventMealLogged,
		Data: map[string]interface{}{
			"meal":       mealName,
			"item_count": itemCount,
		},
	})
}

func publishPredictionsUpdated(hub *notifications.Hub, householdID uuid.UUID, shortfallValue float64) {
	if hub == nil {
		return
	}

	hub.Publish(householdID, notifications.Event{
		Type: notifications.EventPredictionsUpdated,
		Data: map[string]interface{}{
			"total_shortfall_value": shortfallValue,
		},
	})
}
