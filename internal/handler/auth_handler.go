package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// DevLoginRequest selects which demo identity to log in as.
type DevLoginRequest struct {
	Role string `json:"role"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// LoginDev godoc
// @Summary Development login bypass
// @Description Logs in as a fixed demo CLIENT or SUPERADMIN. Only mounted outside production.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DevLoginRequest true "Requested role"
// @Success 200 {object} service.AuthResult
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/dev [post]
func (h *AuthHandler) LoginDev(c echo.Context) error {
	var req DevLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.LoginDev(c.Request().Context(), req.Role)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "dev auth failed",
			Code:  "DEV_AUTH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, result)
}

// LoginGoogle godoc
// @Summary Login with a Google identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} service.AuthResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) LoginGoogle(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "credential is required")
	}

	result, err := h.authService.LoginGoogle(c.Request().Context(), req.Credential)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
