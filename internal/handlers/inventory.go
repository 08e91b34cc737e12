package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/notifications"
	"example.com/kitchen-planner/backend/internal/repository"
)

type InventoryHandler struct {
	Inventory *repository.InventoryRepository
	Hub       *notifications.Hub
}

// NewInventoryHandler создает обработчик кухонных запасов.
func NewInventoryHandler(inventory *repository.InventoryRepository, hub *notifications.Hub) *InventoryHandler {
	return &InventoryHandler{Inventory: inventory, Hub: hub}
}

type InventoryItemRequest struct {
	Name              string     `json:"name" validate:"required,max=120"`
	Category          string     `json:"category" validate:"required,max=60"`
	Unit              string     `json:"unit" validate:"required,max=10"`
	Quantity          float64    `json:"quantity" validate:"gte=0"`
	Price             float64    `json:"price" validate:"gte=0"`
	MinThreshold      float64    `json:"min_threshold" validate:"gte=0"`
	UsageFrequency    string     `json:"usage_frequency" validate:"omitempty,oneof=daily weekly monthly adhoc"`
	SubstitutionGroup string     `json:"substitution_group" validate:"omitempty,max=60"`
	ExpiryDate        *time.Time `json:"expiry_date"`
}

type AdjustQuantityRequest struct {
	Delta float64 `json:"delta" validate:"required"`
}

type InventoryListResponse struct {
	Items []models.InventoryItem `json:"items"`
}

// List возвращает запасы домохозяйства.
func (h *InventoryHandler) List(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.Inventory.ListByHousehold(c.Request().Context(), householdID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, InventoryListResponse{Items: items})
}

// LowStock возвращает позиции с остатком не выше порога.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.Inventory.ListBelowThreshold(c.Request().Context(), householdID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, InventoryListResponse{Items: items})
}

// Get возвращает одну позицию запасов.
func (h *InventoryHandler) Get(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	item, err := h.Inventory.GetByID(c.Request().Context(), householdID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, item)
}

// Create добавляет позицию запасов.
func (h *InventoryHandler) Create(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	item, err := itemFromRequest(householdID, req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.Inventory.Create(c.Request().Context(), item)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "item already exists")
		}
		return serverError(c)
	}

	publishInventoryUpdate(h.Hub, householdID, created.Name, created.Quantity)

	return c.JSON(http.StatusCreated, created)
}

// Update изменяет позицию запасов.
func (h *InventoryHandler) Update(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	item, err := itemFromRequest(householdID, req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	item.ID = itemID

	updated, err := h.Inventory.Update(c.Request().Context(), householdID, item)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "item name already taken")
		}
		return serverError(c)
	}

	publishInventoryUpdate(h.Hub, householdID, updated.Name, updated.Quantity)
	h.notifyIfLow(c, householdID)

	return c.JSON(http.StatusOK, updated)
}

// Adjust меняет остаток позиции на дельту, остаток не уходит ниже нуля.
func (h *InventoryHandler) Adjust(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return badRequest(c, "invalid item name")
	}

	var req AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	item, err := h.Inventory.AdjustQuantity(c.Request().Context(), householdID, name, req.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		return serverError(c)
	}

	publishInventoryUpdate(h.Hub, householdID, item.Name, item.Quantity)
	h.notifyIfLow(c, householdID)

	return c.JSON(http.StatusOK, item)
}

// Delete удаляет позицию запасов.
func (h *InventoryHandler) Delete(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.Inventory.Delete(c.Request().Context(), householdID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *InventoryHandler) notifyIfLow(c echo.Context, householdID uuid.UUID) {
	low, err := h.Inventory.ListBelowThreshold(c.Request().Context(), householdID)
	if err != nil {
		return
	}
	publishLowStock(h.Hub, householdID, low)
}

func itemFromRequest(householdID uuid.UUID, req InventoryItemRequest) (models.InventoryItem, error) {
	unit := models.Unit(strings.ToLower(strings.TrimSpace(req.Unit)))
	frequency := models.UsageFrequency(req.UsageFrequency)
	if frequency != "" && !models.ValidFrequency(frequency) {
		return models.InventoryItem{}, errors.New("unknown usage frequency")
	}

	return models.InventoryItem{
		HouseholdID:       householdID,
		Name:              strings.TrimSpace(req.Name),
		Category:          strings.TrimSpace(req.Category),
		Unit:              unit,
		Quantity:          req.Quantity,
		Price:             req.Price,
		MinThreshold:      req.MinThreshold,
		UsageFrequency:    frequency,
		SubstitutionGroup: strings.TrimSpace(req.SubstitutionGroup),
		ExpiryDate:        req.ExpiryDate,
	}, nil
}
