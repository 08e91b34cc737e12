package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/engine"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/notifications"
	"example.com/kitchen-planner/backend/internal/refdata"
	"example.com/kitchen-planner/backend/internal/repository"
)

type PredictionHandler struct {
	Store     *refdata.Store
	Estimator *engine.Estimator
	Inventory *repository.InventoryRepository
	Meals     *repository.MealRepository
	Profiles  *repository.ProfileRepository
	Targets   *repository.TargetRepository
	Hub       *notifications.Hub
	// HistoryWindowDays задает глубину журнала, участвующую в оценке темпа.
	HistoryWindowDays int
}

// NewPredictionHandler создает обработчик прогнозов потребления.
func NewPredictionHandler(
	store *refdata.Store,
	estimator *engine.Estimator,
	inventory *repository.InventoryRepository,
	meals *repository.MealRepository,
	profiles *repository.ProfileRepository,
	targets *repository.TargetRepository,
	hub *notifications.Hub,
	historyWindowDays int,
) *PredictionHandler {
	return &PredictionHandler{
		Store:             store,
		Estimator:         estimator,
		Inventory:         inventory,
		Meals:             meals,
		Profiles:          profiles,
		Targets:           targets,
		Hub:               hub,
		HistoryWindowDays: historyWindowDays,
	}
}

type ShoppingListItem struct {
	ItemName       string                `json:"item_name"`
	Unit           models.Unit           `json:"unit"`
	Frequency      models.UsageFrequency `json:"frequency"`
	Shortfall      float64               `json:"shortfall"`
	ShortfallValue float64               `json:"shortfall_value"`
}

type ShoppingListResponse struct {
	Items      []ShoppingListItem `json:"items"`
	TotalValue float64            `json:"total_value"`
}

var errProfileRequired = errors.New("profile required")

// Predict строит прогноз потребления по каталогу, запасам и журналу.
func (h *PredictionHandler) Predict(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	set, err := h.predictionSet(c.Request().Context(), householdID)
	if err != nil {
		return h.mapPredictionError(c, err)
	}

	publishPredictionsUpdated(h.Hub, householdID, set.TotalShortfallValue)

	return c.JSON(http.StatusOK, set)
}

// ShoppingList возвращает дефицитные позиции списком покупок,
// самые дорогие пробелы первыми.
func (h *PredictionHandler) ShoppingList(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	set, err := h.predictionSet(c.Request().Context(), householdID)
	if err != nil {
		return h.mapPredictionError(c, err)
	}

	items := make([]ShoppingListItem, 0, len(set.Items))
	for _, prediction := range set.Items {
		if prediction.Shortfall <= 0 {
			continue
		}
		items = append(items, ShoppingListItem{
			ItemName:       prediction.ItemName,
			Unit:           prediction.Unit,
			Frequency:      prediction.Frequency,
			Shortfall:      prediction.Shortfall,
			ShortfallValue: prediction.ShortfallValue,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ShortfallValue != items[j].ShortfallValue {
			return items[i].ShortfallValue > items[j].ShortfallValue
		}
		return items[i].ItemName < items[j].ItemName
	})

	return c.JSON(http.StatusOK, ShoppingListResponse{
		Items:      items,
		TotalValue: set.TotalShortfallValue,
	})
}

func (h *PredictionHandler) predictionSet(ctx context.Context, householdID uuid.UUID) (engine.PredictionSet, error) {
	snapshot, err := h.Store.Snapshot()
	if err != nil {
		return engine.PredictionSet{}, err
	}

	profile, err := h.Profiles.Get(ctx, householdID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return engine.PredictionSet{}, errProfileRequired
		}
		return engine.PredictionSet{}, err
	}

	inventory, err := h.Inventory.ListByHousehold(ctx, householdID)
	if err != nil {
		return engine.PredictionSet{}, err
	}

	now := time.Now().UTC()
	history, err := h.Meals.ListByHousehold(ctx, householdID, now.AddDate(0, 0, -h.HistoryWindowDays))
	if err != nil {
		return engine.PredictionSet{}, err
	}

	targets, err := h.Targets.Map(ctx, householdID)
	if err != nil {
		return engine.PredictionSet{}, err
	}

	return h.Estimator.Predict(engine.PredictionInput{
		Catalog:   snapshot.Catalog,
		Inventory: inventory,
		History:   history,
		Profile:   profile,
		Targets:   targets,
		Now:       now,
	})
}

func (h *PredictionHandler) mapPredictionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errProfileRequired):
		return badRequest(c, "family profile is required for predictions")
	case errors.Is(err, engine.ErrInvalidInput):
		return badRequest(c, "family profile must have at least one member")
	default:
		return serverError(c)
	}
}
