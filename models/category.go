package models

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Filled by the repository when listing categories with counts.
	PostCount int `json:"post_count,omitempty" gorm:"-"`
}
