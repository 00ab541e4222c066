package model

import "time"

// Goal represents a fitness target owned by a user. Dates are kept in
// canonical YYYY-MM-DD form; both are optional.
type Goal struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Target      int       `json:"target" gorm:"not null"`
	Unit        string    `json:"unit" gorm:"size:255;not null"`
	StartDate   *string   `json:"startDate,omitempty" gorm:"size:10"`
	EndDate     *string   `json:"endDate,omitempty" gorm:"size:10"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	User     User       `json:"-" gorm:"foreignKey:UserID"`
	Progress []Progress `json:"progress,omitempty" gorm:"foreignKey:GoalID"`
}
