package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/notifications"
	"example.com/kitchen-planner/backend/internal/repository"
)

type MealHandler struct {
	Meals     *repository.MealRepository
	Inventory *repository.InventoryRepository
	Hub       *notifications.Hub
	// HistoryWindowDays ограничивает глубину журнала в выдаче.
	HistoryWindowDays int
}

// NewMealHandler создает обработчик журнала готовки.
func NewMealHandler(meals *repository.MealRepository, inventory *repository.InventoryRepository, hub *notifications.Hub, historyWindowDays int) *MealHandler {
	return &MealHandler{
		Meals:             meals,
		Inventory:         inventory,
		Hub:               hub,
		HistoryWindowDays: historyWindowDays,
	}
}

type MealItemRequest struct {
	ItemName string  `json:"item_name" validate:"required,max=120"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit" validate:"omitempty,max=10"`
}

type LogMealRequest struct {
	MealName string            `json:"meal_name" validate:"required,max=120"`
	MealType string            `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	CookedAt *time.Time        `json:"cooked_at"`
	Items    []MealItemRequest `json:"items" validate:"required,min=1,dive"`
}

type MealHistoryResponse struct {
	Entries []models.MealHistoryEntry `json:"entries"`
}

// Log записывает приготовленное блюдо и списывает ингредиенты с остатков.
func (h *MealHandler) Log(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req LogMealRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	cookedAt := time.Now().UTC()
	if req.CookedAt != nil {
		cookedAt = req.CookedAt.UTC()
	}

	items := make([]models.MealItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.MealItem{
			ItemName: strings.TrimSpace(item.ItemName),
			Quantity: item.Quantity,
			Unit:     models.Unit(strings.ToLower(strings.TrimSpace(item.Unit))),
		})
	}

	entry := models.MealHistoryEntry{
		HouseholdID: householdID,
		MealName:    strings.TrimSpace(req.MealName),
		MealType:    req.MealType,
		CookedAt:    cookedAt,
		Items:       items,
	}

	logged, err := h.Meals.Log(c.Request().Context(), entry)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "meal name and at least one item are required")
		}
		return serverError(c)
	}

	publishMealLogged(h.Hub, householdID, logged.MealName, len(logged.Items))

	low, err := h.Inventory.ListBelowThreshold(c.Request().Context(), householdID)
	if err == nil {
		publishLowStock(h.Hub, householdID, low)
	}

	return c.JSON(http.StatusCreated, logged)
}

// History возвращает журнал готовки за окно наблюдения.
func (h *MealHandler) History(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	since := time.Now().UTC().AddDate(0, 0, -h.HistoryWindowDays)

	entries, err := h.Meals.ListByHousehold(c.Request().Context(), householdID, since)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, MealHistoryResponse{Entries: entries})
}
