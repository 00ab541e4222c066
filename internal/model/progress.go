package model

import "time"

// Progress is a single dated measurement recorded against a goal.
// Entries are append-only: there is no update or delete operation.
type Progress struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GoalID    uint      `json:"goalId" gorm:"not null;index"`
	Value     int       `json:"value" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:10;not null"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Goal Goal `json:"-" gorm:"foreignKey:GoalID"`
}
