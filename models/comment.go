package models

import "time"

// Comment belongs to a post and an author. A comment with no parent is
// top-level; replies reference their parent comment.
type Comment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	PostID     uint      `json:"post_id" gorm:"not null;index"`
	Post       *Post     `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID   uint      `json:"author_id" gorm:"not null"`
	Author     User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Content    string    `json:"content" gorm:"size:1000;not null"`
	ParentID   *uint     `json:"parent_id"`
	Replies    []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	IsApproved bool      `json:"is_approved" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
