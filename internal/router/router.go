package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fitgoals/internal/auth"
	"fitgoals/internal/config"
	"fitgoals/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	goalHandler *handler.GoalHandler,
	progressHandler *handler.ProgressHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	// Secured routes (require an unrevoked JWT)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		// The cut-prefix strips the "Bearer " scheme before the token
		// reaches ParseTokenFunc.
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			revoked, _ := tokenStore.IsTokenBlacklisted(c.Request().Context(), claims.ID)
			if revoked {
				return nil, errors.New("token has been revoked")
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		},
	}))

	// Goal routes
	secured.GET("/goals", goalHandler.GetGoals)
	secured.POST("/goals", goalHandler.CreateGoal)
	secured.PUT("/goals/:id", goalHandler.UpdateGoal)
	secured.DELETE("/goals/:id", goalHandler.DeleteGoal)

	// Progress routes
	secured.POST("/progress", progressHandler.AddProgress)

	// Session routes
	secured.POST("/logout", authHandler.Logout)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
