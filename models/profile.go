package models

import "time"

// Profile extends User with optional personal details. One row per user,
// created lazily on first profile access.
type Profile struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bio       string    `json:"bio" gorm:"size:500"`
	Location  string    `json:"location" gorm:"size:100"`
	Website   string    `json:"website"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
