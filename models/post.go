package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Title         string     `json:"title" gorm:"size:200;not null"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	AuthorID      uint       `json:"author_id" gorm:"not null;index"`
	Author        User       `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID    *uint      `json:"category_id" gorm:"index"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Content       string     `json:"content" gorm:"type:text"`
	Excerpt       string     `json:"excerpt" gorm:"size:300"`
	FeaturedImage string     `json:"featured_image"`
	IsPublished   bool       `json:"is_published" gorm:"default:false;index"`
	PublishedAt   *time.Time `json:"published_at"`
	ViewsCount    uint       `json:"views_count" gorm:"default:0;not null"`
	Tags          []Tag      `json:"tags" gorm:"many2many:post_tags;"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Computed on load, never stored.
	IsNew bool `json:"is_new" gorm:"-"`
}

// BeforeSave stamps PublishedAt the first time a post is published.
// Subsequent saves never touch an existing timestamp.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// AfterFind marks posts published within the last 7 days.
func (p *Post) AfterFind(tx *gorm.DB) error {
	p.IsNew = p.ComputeIsNew(time.Now())
	return nil
}

// ComputeIsNew reports whether the post was published within 7 days of now.
// False when the post was never published.
func (p *Post) ComputeIsNew(now time.Time) bool {
	if p.PublishedAt == nil {
		return false
	}
	return now.Sub(*p.PublishedAt) < 7*24*time.Hour
}
