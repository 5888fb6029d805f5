package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
)

// sessionClaims extracts the verified session claims placed on the context by
// the JWT middleware.
func sessionClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// respondError maps a domain error to its HTTP shape. Unexpected errors are
// logged with detail and surfaced as a generic message.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
