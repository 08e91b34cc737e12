package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/engine"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/refdata"
	"example.com/kitchen-planner/backend/internal/repository"
)

type AnalyticsHandler struct {
	Store    *refdata.Store
	Profiles *repository.ProfileRepository
}

// NewAnalyticsHandler создает обработчик бюджетной аналитики.
func NewAnalyticsHandler(store *refdata.Store, profiles *repository.ProfileRepository) *AnalyticsHandler {
	return &AnalyticsHandler{Store: store, Profiles: profiles}
}

type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

type DietsResponse struct {
	Diets []engine.DietOption `json:"diets"`
}

type OutliersRequest struct {
	Prices []float64 `json:"prices" validate:"required,min=1"`
}

// budgetParams — параметры расчета: профиль семьи с перекрытием из query.
type budgetParams struct {
	FamilySize    int
	District      string
	MonthlyIncome float64
	Diet          models.DietType
}

// Budget считает месячный бюджет семьи.
func (h *AnalyticsHandler) Budget(c echo.Context) error {
	analytics, params, err := h.analyticsWithParams(c)
	if err != nil {
		return err
	}

	report, calcErr := analytics.Calculator.MonthlyBudget(params.FamilySize, params.District, params.MonthlyIncome, params.Diet)
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, report)
}

// CompleteReport возвращает полный отчет: бюджет, сезонность, прогноз,
// достаточность и стратегии экономии.
func (h *AnalyticsHandler) CompleteReport(c echo.Context) error {
	analytics, params, err := h.analyticsWithParams(c)
	if err != nil {
		return err
	}

	month := int(time.Now().UTC().Month())
	report, calcErr := analytics.CompleteReport(params.FamilySize, params.District, params.MonthlyIncome, params.Diet, month)
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, report)
}

// Districts возвращает список округов.
func (h *AnalyticsHandler) Districts(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DistrictsResponse{Districts: analytics.Districts()})
}

// DistrictAdvice возвращает советы по округу.
func (h *AnalyticsHandler) DistrictAdvice(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	advice, calcErr := analytics.Calculator.DistrictAdvice(strings.TrimSpace(c.Param("name")))
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, advice)
}

// CompareDistricts сравнивает продовольственные расходы округов из query.
func (h *AnalyticsHandler) CompareDistricts(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	names := strings.Split(c.QueryParam("names"), ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	comparison, calcErr := analytics.Analyzer.CompareDistricts(names)
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, comparison)
}

// Diets возвращает доступные диеты.
func (h *AnalyticsHandler) Diets(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DietsResponse{Diets: analytics.DietTypes()})
}

// Alternatives возвращает дешевые заменители категории (rice, protein).
func (h *AnalyticsHandler) Alternatives(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	alternatives, calcErr := analytics.Analyzer.CheapestAlternatives(strings.TrimSpace(c.Param("category")))
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, alternatives)
}

// Seasonal возвращает сезонные изменения цен для месяца (по умолчанию текущего).
func (h *AnalyticsHandler) Seasonal(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	month := int(time.Now().UTC().Month())
	if raw := c.QueryParam("month"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return badRequest(c, "month must be an integer")
		}
		month = parsed
	}

	savings, calcErr := analytics.Analyzer.SeasonalSavings(month)
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, savings)
}

// Strategies возвращает стратегии экономии по приоритету.
func (h *AnalyticsHandler) Strategies(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	strategies, calcErr := analytics.Analyzer.Strategies()
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, strategies)
}

// Inflation прогнозирует инфляцию цены товара на полгода вперед.
func (h *AnalyticsHandler) Inflation(c echo.Context) error {
	analytics, err := h.analytics()
	if err != nil {
		return serverError(c)
	}

	months := 6
	if raw := c.QueryParam("months"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 1 || parsed > 24 {
			return badRequest(c, "months must be 1..24")
		}
		months = parsed
	}

	forecast, calcErr := analytics.Forecaster.PriceInflation(strings.TrimSpace(c.Param("item")), months)
	if calcErr != nil {
		return mapEngineError(c, calcErr)
	}

	return c.JSON(http.StatusOK, forecast)
}

// MarketOutliers помечает выбросы в присланных рыночных ценах.
func (h *AnalyticsHandler) MarketOutliers(c echo.Context) error {
	var req OutliersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	return c.JSON(http.StatusOK, engine.DetectOutliers(req.Prices))
}

func (h *AnalyticsHandler) analytics() (*engine.Analytics, error) {
	snapshot, err := h.Store.Snapshot()
	if err != nil {
		return nil, err
	}
	return engine.NewAnalytics(snapshot), nil
}

func (h *AnalyticsHandler) analyticsWithParams(c echo.Context) (*engine.Analytics, budgetParams, error) {
	analytics, err := h.analytics()
	if err != nil {
		return nil, budgetParams{}, echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	params, err := h.resolveParams(c)
	if err != nil {
		return nil, budgetParams{}, err
	}

	return analytics, params, nil
}

// resolveParams берет параметры из профиля семьи и позволяет перекрыть
// их query-параметрами family_size, district, monthly_income, diet.
func (h *AnalyticsHandler) resolveParams(c echo.Context) (budgetParams, error) {
	params := budgetParams{}

	householdID, ok := auth.HouseholdIDFromContext(c)
	if ok {
		profile, err := h.Profiles.Get(c.Request().Context(), householdID)
		if err == nil {
			params.FamilySize = profile.FamilySize()
			params.District = profile.District
			params.MonthlyIncome = profile.MonthlyIncome
			params.Diet = profile.Diet
		} else if !errors.Is(err, repository.ErrNotFound) {
			return params, echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	if raw := c.QueryParam("family_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, "family_size must be an integer")
		}
		params.FamilySize = parsed
	}

	if raw := c.QueryParam("district"); raw != "" {
		params.District = strings.TrimSpace(raw)
	}

	if raw := c.QueryParam("monthly_income"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, "monthly_income must be a number")
		}
		params.MonthlyIncome = parsed
	}

	if raw := c.QueryParam("diet"); raw != "" {
		params.Diet = models.DietType(strings.ToLower(strings.TrimSpace(raw)))
	}

	if params.District == "" || params.FamilySize == 0 || params.MonthlyIncome == 0 || params.Diet == "" {
		return params, echo.NewHTTPError(http.StatusBadRequest, "set a family profile or pass family_size, district, monthly_income and diet")
	}

	return params, nil
}

func mapEngineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrDistrictNotFound):
		return notFound(c, "district not found")
	case errors.Is(err, engine.ErrInvalidInput):
		return badRequest(c, err.Error())
	case errors.Is(err, engine.ErrMissingData):
		return serverError(c)
	default:
		return serverError(c)
	}
}
