package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/engine"
	"example.com/kitchen-planner/backend/internal/refdata"
	"example.com/kitchen-planner/backend/internal/repository"
)

type DashboardHandler struct {
	Store       *refdata.Store
	Predictions *PredictionHandler
	Inventory   *repository.InventoryRepository
	Meals       *repository.MealRepository
	Profiles    *repository.ProfileRepository
}

// NewDashboardHandler создает обработчик сводной панели.
func NewDashboardHandler(
	store *refdata.Store,
	predictions *PredictionHandler,
	inventory *repository.InventoryRepository,
	meals *repository.MealRepository,
	profiles *repository.ProfileRepository,
) *DashboardHandler {
	return &DashboardHandler{
		Store:       store,
		Predictions: predictions,
		Inventory:   inventory,
		Meals:       meals,
		Profiles:    profiles,
	}
}

type DashboardOverview struct {
	InventoryCount      int                         `json:"inventory_count"`
	InventoryValue      float64                     `json:"inventory_value"`
	LowStockCount       int                         `json:"low_stock_count"`
	LowStockItems       []string                    `json:"low_stock_items"`
	MealsThisWeek       int                         `json:"meals_this_week"`
	TotalDailyValue     float64                     `json:"total_daily_value"`
	TotalShortfallValue float64                     `json:"total_shortfall_value"`
	Sufficiency         *engine.SufficiencyAnalysis `json:"sufficiency,omitempty"`
}

// Overview собирает сводку: запасы, дефицит, журнал за неделю и
// достаточность бюджета. Блоки, требующие профиля, опускаются без него.
func (h *DashboardHandler) Overview(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	ctx := c.Request().Context()
	overview := DashboardOverview{LowStockItems: []string{}}

	inventory, err := h.Inventory.ListByHousehold(ctx, householdID)
	if err != nil {
		return serverError(c)
	}
	overview.InventoryCount = len(inventory)
	for _, item := range inventory {
		overview.InventoryValue += item.Quantity * item.Price
	}

	low, err := h.Inventory.ListBelowThreshold(ctx, householdID)
	if err != nil {
		return serverError(c)
	}
	overview.LowStockCount = len(low)
	for _, item := range low {
		overview.LowStockItems = append(overview.LowStockItems, item.Name)
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	meals, err := h.Meals.ListByHousehold(ctx, householdID, weekAgo)
	if err != nil {
		return serverError(c)
	}
	overview.MealsThisWeek = len(meals)

	set, err := h.Predictions.predictionSet(ctx, householdID)
	if err != nil {
		if errors.Is(err, errProfileRequired) || errors.Is(err, engine.ErrInvalidInput) {
			return c.JSON(http.StatusOK, overview)
		}
		return serverError(c)
	}
	overview.TotalDailyValue = set.TotalDailyValue
	overview.TotalShortfallValue = set.TotalShortfallValue

	profile, err := h.Profiles.Get(ctx, householdID)
	if err == nil && profile.MonthlyIncome > 0 {
		if snapshot, snapErr := h.Store.Snapshot(); snapErr == nil {
			forecaster := engine.NewForecaster(snapshot)
			monthlySpend := set.TotalDailyValue * 30
			if analysis, sufErr := forecaster.Sufficiency(profile.MonthlyIncome, monthlySpend); sufErr == nil {
				overview.Sufficiency = &analysis
			}
		}
	}

	return c.JSON(http.StatusOK, overview)
}
