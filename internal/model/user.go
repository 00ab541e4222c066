package model

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash and never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Goals []Goal `json:"goals,omitempty" gorm:"foreignKey:UserID"`
}
