package repository

import (
	"context"

	"gorm.io/gorm"

	"fitgoals/internal/model"
)

// GoalRepository defines goal persistence operations.
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	FindByID(ctx context.Context, id uint) (*model.Goal, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Goal, error)
	// Update applies the mutable goal fields and reports rows affected, so
	// callers can distinguish a vanished row from a successful write.
	Update(ctx context.Context, goal *model.Goal) (int64, error)
	// DeleteCascade removes the goal and its progress entries inside one
	// transaction.
	DeleteCascade(ctx context.Context, id uint) (int64, error)
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository builds a GORM-backed repository.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) FindByID(ctx context.Context, id uint) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Preload("Progress").
		Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) (int64, error) {
	// Map form so cleared optional dates write NULL instead of being skipped.
	res := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"name":        goal.Name,
			"description": goal.Description,
			"target":      goal.Target,
			"unit":        goal.Unit,
			"start_date":  goal.StartDate,
			"end_date":    goal.EndDate,
		})
	return res.RowsAffected, res.Error
}

func (r *goalRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Goal{}, id)
		if res.Error != nil {
			return res.Error
		}
		rows = res.RowsAffected
		return nil
	})
	return rows, err
}
