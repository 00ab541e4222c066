package repository

import (
	"context"

	"gorm.io/gorm"

	"fitgoals/internal/model"
)

// ProgressRepository defines progress persistence operations. Progress is
// append-only; deletion happens only through the goal cascade.
type ProgressRepository interface {
	Create(ctx context.Context, progress *model.Progress) error
	FindByGoalID(ctx context.Context, goalID uint) ([]model.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository builds a GORM-backed repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, progress *model.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) FindByGoalID(ctx context.Context, goalID uint) ([]model.Progress, error) {
	var entries []model.Progress
	if err := r.db.WithContext(ctx).Where("goal_id = ?", goalID).
		Order("date").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
