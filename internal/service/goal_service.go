package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"fitgoals/internal/errors"
	"fitgoals/internal/model"
	"fitgoals/internal/repository"
)

// GoalService exposes goal and progress operations. Every mutating
// operation re-derives ownership from the database; nothing is cached
// across requests.
type GoalService interface {
	GetAllGoals(ctx context.Context, userID uint) ([]model.Goal, error)
	CreateGoal(ctx context.Context, userID uint, in *GoalInput) (*model.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID uint, in *GoalInput) (*model.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID uint) error
	AddProgress(ctx context.Context, userID uint, in *ProgressInput) (*model.Progress, error)
}

type goalService struct {
	goals    repository.GoalRepository
	progress repository.ProgressRepository
}

// NewGoalService builds a GoalService over the goal and progress repositories.
func NewGoalService(goals repository.GoalRepository, progress repository.ProgressRepository) GoalService {
	return &goalService{goals: goals, progress: progress}
}

// GetAllGoals returns all goals owned by the caller with nested progress.
func (s *goalService) GetAllGoals(ctx context.Context, userID uint) ([]model.Goal, error) {
	goals, err := s.goals.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// CreateGoal validates the payload and persists a goal owned by the caller.
func (s *goalService) CreateGoal(ctx context.Context, userID uint, in *GoalInput) (*model.Goal, error) {
	if err := s.validateGoal(in); err != nil {
		return nil, err
	}

	target, _ := toPositiveInt(in.Target)
	goal := &model.Goal{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Target:      target,
		Unit:        in.Unit,
		StartDate:   optionalDate(in.StartDate),
		EndDate:     optionalDate(in.EndDate),
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// UpdateGoal applies the payload to a goal the caller owns. The updated
// row is re-read so the response reflects what was persisted.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID uint, in *GoalInput) (*model.Goal, error) {
	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}
	if err := s.validateGoal(in); err != nil {
		return nil, err
	}

	target, _ := toPositiveInt(in.Target)
	rows, err := s.goals.Update(ctx, &model.Goal{
		ID:          goalID,
		Name:        in.Name,
		Description: in.Description,
		Target:      target,
		Unit:        in.Unit,
		StartDate:   optionalDate(in.StartDate),
		EndDate:     optionalDate(in.EndDate),
	})
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	if rows == 0 {
		return nil, errors.ErrGoalNotFound
	}

	updated, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("reload goal: %w", err)
	}
	return updated, nil
}

// DeleteGoal removes a goal the caller owns together with its progress
// entries.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID uint) error {
	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return err
	}

	rows, err := s.goals.DeleteCascade(ctx, goalID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if rows == 0 {
		return errors.ErrGoalNotFound
	}
	return nil
}

// AddProgress records a measurement against a goal the caller owns.
func (s *goalService) AddProgress(ctx context.Context, userID uint, in *ProgressInput) (*model.Progress, error) {
	result, err := ValidateProgressData(in)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, errors.NewValidationError(result.Errors)
	}

	goalID, _ := toPositiveInt(in.GoalID)
	if _, err := s.ownedGoal(ctx, userID, uint(goalID)); err != nil {
		return nil, err
	}

	value, _ := toPositiveInt(in.Value)
	progress := &model.Progress{
		GoalID: uint(goalID),
		Value:  value,
		Date:   in.Date,
	}
	if err := s.progress.Create(ctx, progress); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return progress, nil
}

// ownedGoal loads the goal and confirms the caller owns it.
func (s *goalService) ownedGoal(ctx context.Context, userID, goalID uint) (*model.Goal, error) {
	goal, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, errors.ErrNotGoalOwner
	}
	return goal, nil
}

func (s *goalService) validateGoal(in *GoalInput) error {
	result, err := ValidateGoalData(in)
	if err != nil {
		return err
	}
	if !result.IsValid {
		return errors.NewValidationError(result.Errors)
	}
	return nil
}

func optionalDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
