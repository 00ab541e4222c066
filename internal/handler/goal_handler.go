package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fitgoals/internal/errors"
	"fitgoals/internal/service"
)

// GoalHandler handles goal CRUD endpoints.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GetGoals godoc
// @Summary List the caller's goals with nested progress
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Goal
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) GetGoals(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	goals, err := h.goalService.GetAllGoals(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("list goals: %v", err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{Message: "Failed to fetch goals"})
	}

	return c.JSON(http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create a goal owned by the caller
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GoalInput true "Goal data"
// @Success 201 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var in service.GoalInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "invalid request body"})
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), userID, &in)
	if err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("create goal: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, goal)
}

// UpdateGoal godoc
// @Summary Update a goal owned by the caller
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param request body service.GoalInput true "Goal data"
// @Success 200 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	goalID, err := goalIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "Invalid goal ID"})
	}

	var in service.GoalInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "invalid request body"})
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), userID, goalID, &in)
	if err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("update goal: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal and its progress entries
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	goalID, err := goalIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "Invalid goal ID"})
	}

	if err := h.goalService.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		status, body := errors.MapErrorToHTTP(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("delete goal: %v", err)
		}
		return c.JSON(status, body)
	}

	return c.NoContent(http.StatusNoContent)
}

func goalIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
