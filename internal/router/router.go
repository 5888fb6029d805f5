package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	"github.com/diegorodrguez7/carta-digital-qr/internal/config"
	"github.com/diegorodrguez7/carta-digital-qr/internal/handler"
)

// Version reported by the health endpoint.
const Version = "0.1.0"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	meHandler *handler.MeHandler,
	menuHandler *handler.MenuHandler,
	publicationHandler *handler.PublicationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "version": Version})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	if cfg.DevAuthEnabled() {
		// Development bypass login; never mounted in production.
		e.POST("/auth/dev", authHandler.LoginDev)
	}
	e.POST("/auth/google", authHandler.LoginGoogle)
	e.GET("/public/menu/:ownerId", publicationHandler.PublicMenu)

	// Secured routes (require a bearer session token)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", meHandler.Profile)
	secured.GET("/me/restaurant", meHandler.Restaurant)
	secured.PUT("/me/restaurant", meHandler.UpdateRestaurant)

	secured.POST("/categories", menuHandler.CreateCategory)
	secured.POST("/dishes", menuHandler.CreateDish)
	secured.DELETE("/dishes/:id", menuHandler.DeleteDish)

	secured.POST("/menu/publish", publicationHandler.Publish)
	secured.POST("/menu/unpublish", publicationHandler.Unpublish)
	secured.POST("/menu/delete", publicationHandler.DeleteMenu)

	// Superadmin routes; the role check runs again in the service layer
	// before any store access.
	admin := secured.Group("/admin")
	admin.GET("/restaurants", adminHandler.ListRestaurants)
	admin.POST("/restaurants/:id/toggle-status", adminHandler.ToggleStatus)
	admin.POST("/restaurants/:id/toggle-menu", adminHandler.ToggleMenu)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
