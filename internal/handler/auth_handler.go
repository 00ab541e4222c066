package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitgoals/internal/errors"
	"fitgoals/internal/model"
	"fitgoals/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("signup: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("login: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
}

// Logout godoc
// @Summary Revoke the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Message: "Authorization header missing"})
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("logout: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out successfully"})
}
