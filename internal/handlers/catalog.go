package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/notifications"
	"example.com/kitchen-planner/backend/internal/refdata"
	"example.com/kitchen-planner/backend/internal/repository"
)

type CatalogHandler struct {
	Store       *refdata.Store
	Households  *repository.HouseholdRepository
	Hub         *notifications.Hub
	adminEmails map[string]struct{}
}

// NewCatalogHandler создает обработчик справочного каталога товаров.
// Изменять каталог могут только домохозяйства из списка администраторов.
func NewCatalogHandler(store *refdata.Store, households *repository.HouseholdRepository, hub *notifications.Hub, adminEmails []string) *CatalogHandler {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &CatalogHandler{
		Store:       store,
		Households:  households,
		Hub:         hub,
		adminEmails: admins,
	}
}

type CatalogResponse struct {
	DataVersion string               `json:"data_version"`
	Items       []models.CatalogItem `json:"items"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type AddCatalogItemRequest struct {
	Name              string  `json:"name" validate:"required,max=120"`
	SinhalaName       string  `json:"sinhala_name" validate:"omitempty,max=120"`
	Category          string  `json:"category" validate:"required,max=60"`
	Unit              string  `json:"unit" validate:"required,max=10"`
	ReferencePrice    float64 `json:"reference_price" validate:"required,gt=0"`
	UsageFrequency    string  `json:"usage_frequency" validate:"required,oneof=daily weekly monthly adhoc"`
	SubstitutionGroup string  `json:"substitution_group" validate:"omitempty,max=60"`
}

// List возвращает весь каталог товаров.
func (h *CatalogHandler) List(c echo.Context) error {
	snapshot, err := h.Store.Snapshot()
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, CatalogResponse{
		DataVersion: snapshot.DataVersion,
		Items:       snapshot.Catalog,
	})
}

// UpdatePrice обновляет рыночную цену товара каталога.
func (h *CatalogHandler) UpdatePrice(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return badRequest(c, "invalid item name")
	}

	var req UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	item, err := h.Store.UpdateCatalogPrice(name, req.Price)
	if err != nil {
		if errors.Is(err, refdata.ErrUnknownItem) {
			return notFound(c, "catalog item not found")
		}
		if errors.Is(err, refdata.ErrInvalidPrice) {
			return badRequest(c, "price must be greater than 0")
		}
		return serverError(c)
	}

	h.Hub.Broadcast(notifications.Event{
		Type: notifications.EventMarketPricesUpdate,
		Data: map[string]interface{}{
			"item":  item.Name,
			"price": item.ReferencePrice,
		},
	})

	return c.JSON(http.StatusOK, item)
}

// AddItem добавляет товар в каталог.
func (h *CatalogHandler) AddItem(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req AddCatalogItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	item := models.CatalogItem{
		Name:              strings.TrimSpace(req.Name),
		SinhalaName:       strings.TrimSpace(req.SinhalaName),
		Category:          strings.TrimSpace(req.Category),
		Unit:              models.Unit(strings.ToLower(strings.TrimSpace(req.Unit))),
		ReferencePrice:    req.ReferencePrice,
		UsageFrequency:    models.UsageFrequency(req.UsageFrequency),
		SubstitutionGroup: strings.TrimSpace(req.SubstitutionGroup),
	}

	if err := h.Store.AddCatalogItem(item); err != nil {
		if errors.Is(err, refdata.ErrDuplicateItem) {
			return conflict(c, "catalog item already exists")
		}
		if errors.Is(err, refdata.ErrInvalidPrice) {
			return badRequest(c, "name and positive price are required")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) requireAdmin(c echo.Context) error {
	householdID, ok := auth.HouseholdIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	household, err := h.Households.GetByID(c.Request().Context(), householdID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	if _, ok := h.adminEmails[strings.ToLower(household.Email)]; !ok {
		return echo.NewHTTPError(http.StatusForbidden, "admin access required")
	}

	return nil
}
