package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// AdminHandler handles superadmin endpoints spanning all restaurants.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListRestaurants godoc
// @Summary List every restaurant with owner, categories and dishes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/restaurants [get]
func (h *AdminHandler) ListRestaurants(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurants, err := h.adminService.ListRestaurants(c.Request().Context(), claims.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurants": restaurants})
}

// ToggleStatus godoc
// @Summary Toggle a restaurant between ACTIVE and PAUSED
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/restaurants/{id}/toggle-status [post]
func (h *AdminHandler) ToggleStatus(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid restaurant ID",
			Code:  "INVALID_UUID",
		})
	}

	restaurant, err := h.adminService.ToggleStatus(c.Request().Context(), claims.Role, restaurantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}

// ToggleMenu godoc
// @Summary Toggle a restaurant's menu publication, bypassing ownership
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/restaurants/{id}/toggle-menu [post]
func (h *AdminHandler) ToggleMenu(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid restaurant ID",
			Code:  "INVALID_UUID",
		})
	}

	restaurant, err := h.adminService.ToggleMenu(c.Request().Context(), claims.Role, restaurantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}
