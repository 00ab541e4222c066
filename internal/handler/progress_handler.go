package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitgoals/internal/errors"
	"fitgoals/internal/service"
)

// ProgressHandler handles progress endpoints.
type ProgressHandler struct {
	goalService service.GoalService
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(goalService service.GoalService) *ProgressHandler {
	return &ProgressHandler{goalService: goalService}
}

// AddProgress godoc
// @Summary Record a progress entry against a goal the caller owns
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProgressInput true "Progress data"
// @Success 201 {object} model.Progress
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) AddProgress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var in service.ProgressInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "invalid request body"})
	}

	progress, err := h.goalService.AddProgress(c.Request().Context(), userID, &in)
	if err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("add progress: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, progress)
}
