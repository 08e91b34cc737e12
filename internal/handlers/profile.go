package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/repository"
)

type ProfileHandler struct {
	Profiles *repository.ProfileRepository
	Targets  *repository.TargetRepository
}

// NewProfileHandler создает обработчик семейного профиля и целей закупок.
func NewProfileHandler(profiles *repository.ProfileRepository, targets *repository.TargetRepository) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Targets: targets}
}

type ProfileRequest struct {
	Adults              int      `json:"adults" validate:"required,min=1,max=20"`
	Children            int      `json:"children" validate:"min=0,max=20"`
	District            string   `json:"district" validate:"required,max=40"`
	MonthlyIncome       float64  `json:"monthly_income" validate:"required,gt=0"`
	TargetMonthlyBudget float64  `json:"target_monthly_budget" validate:"gte=0"`
	Diet                string   `json:"diet" validate:"required"`
	AllowedItems        []string `json:"allowed_items" validate:"omitempty,dive,max=120"`
}

type TargetRequest struct {
	ItemName      string  `json:"item_name" validate:"required,max=120"`
	MonthlyTarget float64 `json:"monthly_target" validate:"required,gt=0"`
}

type TargetsResponse struct {
	Targets map[string]float64 `json:"targets"`
}

// Get возвращает профиль семьи.
func (h *ProfileHandler) Get(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.Profiles.Get(c.Request().Context(), householdID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "profile not set")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, profile)
}

// Upsert создает или обновляет профиль семьи.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	diet := models.DietType(strings.ToLower(strings.TrimSpace(req.Diet)))
	if !models.ValidDiet(diet) {
		return badRequest(c, "unknown diet")
	}

	allowed := make([]string, 0, len(req.AllowedItems))
	for _, name := range req.AllowedItems {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}

	profile := models.FamilyProfile{
		HouseholdID:         householdID,
		Adults:              req.Adults,
		Children:            req.Children,
		District:            strings.TrimSpace(req.District),
		MonthlyIncome:       req.MonthlyIncome,
		TargetMonthlyBudget: req.TargetMonthlyBudget,
		Diet:                diet,
		AllowedItems:        allowed,
	}

	saved, err := h.Profiles.Upsert(c.Request().Context(), profile)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, saved)
}

// ListTargets возвращает ручные цели закупок.
func (h *ProfileHandler) ListTargets(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	targets, err := h.Targets.Map(c.Request().Context(), householdID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, TargetsResponse{Targets: targets})
}

// SetTarget задает месячную цель по товару.
func (h *ProfileHandler) SetTarget(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req TargetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	target, err := h.Targets.Upsert(c.Request().Context(), householdID, strings.TrimSpace(req.ItemName), req.MonthlyTarget)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "target must be positive")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, target)
}

// DeleteTarget снимает цель по товару.
func (h *ProfileHandler) DeleteTarget(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return badRequest(c, "invalid item name")
	}

	if err := h.Targets.Delete(c.Request().Context(), householdID, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "target not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}
