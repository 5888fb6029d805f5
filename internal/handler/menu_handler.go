package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// MenuHandler handles category and dish mutation endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateCategoryRequest names a new category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateDishRequest carries a new dish. Translations may be supplied by the
// client; when absent the server fills them in best-effort.
type CreateDishRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Price        *decimal.Decimal    `json:"price"`
	CategoryID   string              `json:"categoryId"`
	Allergens    []string            `json:"allergens"`
	ImageURL     *string             `json:"imageUrl"`
	Translations model.Translations `json:"translations"`
}

// CreateCategory godoc
// @Summary Create a category in the caller's restaurant
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.menuService.CreateCategory(c.Request().Context(), claims.UserID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"category": category})
}

// CreateDish godoc
// @Summary Create a dish in the caller's restaurant
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDishRequest true "Dish"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dishes [post]
func (h *MenuHandler) CreateDish(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req CreateDishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.DishInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Allergens:    req.Allergens,
		ImageURL:     req.ImageURL,
		Translations: req.Translations,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return respondError(c, apperrors.Validationf("categoryId must be a valid id"))
		}
		input.CategoryID = categoryID
	}

	dish, err := h.menuService.CreateDish(c.Request().Context(), claims.UserID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dish": dish})
}

// DeleteDish godoc
// @Summary Delete a dish from the caller's restaurant
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dish ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dishes/{id} [delete]
func (h *MenuHandler) DeleteDish(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperrors.ErrDishNotFound)
	}

	if err := h.menuService.DeleteDish(c.Request().Context(), claims.UserID, dishID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
