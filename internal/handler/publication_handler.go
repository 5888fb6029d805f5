package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
)

// PublicationHandler drives menu publication and serves the public menu view.
type PublicationHandler struct {
	publications service.PublicationService
}

// NewPublicationHandler creates a new publication handler.
func NewPublicationHandler(publications service.PublicationService) *PublicationHandler {
	return &PublicationHandler{publications: publications}
}

// Publish godoc
// @Summary Publish the caller's menu
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/publish [post]
func (h *PublicationHandler) Publish(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurant, err := h.publications.Publish(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}

// Unpublish godoc
// @Summary Pause the caller's published menu
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/unpublish [post]
func (h *PublicationHandler) Unpublish(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurant, err := h.publications.Unpublish(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}

// DeleteMenu godoc
// @Summary Delete every dish and reset the caller's menu to draft
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/delete [post]
func (h *PublicationHandler) DeleteMenu(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	restaurant, err := h.publications.DeleteMenu(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}

// PublicMenu godoc
// @Summary Get a published menu by owner id
// @Description The open endpoint QR codes point at. Hidden unless the menu is published and the business active.
// @Tags public
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /public/menu/{ownerId} [get]
func (h *PublicationHandler) PublicMenu(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return respondError(c, apperrors.ErrRestaurantNotFound)
	}

	restaurant, err := h.publications.PublicMenu(c.Request().Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": restaurant})
}
