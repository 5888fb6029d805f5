package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// MeHandler serves the authenticated user's profile and restaurant.
type MeHandler struct {
	users       repository.UserRepository
	restaurants service.RestaurantService
}

// NewMeHandler creates a new me handler.
func NewMeHandler(users repository.UserRepository, restaurants service.RestaurantService) *MeHandler {
	return &MeHandler{users: users, restaurants: restaurants}
}

// UpdateRestaurantRequest is a partial company-profile update. Absent fields
// are left unchanged.
type UpdateRestaurantRequest struct {
	CompanyName *string `json:"companyName"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	QRColor     *string `json:"qrColor"`
	Tagline     *string `json:"tagline"`
}

// Profile godoc
// @Summary Get the current user's profile and restaurant
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *MeHandler) Profile(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperrors.ErrUserNotFound)
		}
		return respondError(c, err)
	}

	// Provisioning runs on every session bootstrap so a fresh CLIENT always
	// lands with a restaurant in place.
	restaurant, err := h.restaurants.EnsureRestaurant(ctx, user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user,
		"restaurant": restaurant,
	})
}

// Restaurant godoc
// @Summary Get the current user's restaurant with categories and dishes
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/restaurant [get]
func (h *MeHandler) Restaurant(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
		}
		return respondError(c, err)
	}

	restaurant, err := h.restaurants.EnsureRestaurant(ctx, user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}

// UpdateRestaurant godoc
// @Summary Update the current user's company profile
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateRestaurantRequest true "Fields to overwrite"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me/restaurant [put]
func (h *MeHandler) UpdateRestaurant(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	restaurant, err := h.restaurants.UpdateProfile(c.Request().Context(), claims.UserID, service.ProfileUpdate{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		QRColor:     req.QRColor,
		Tagline:     req.Tagline,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}
