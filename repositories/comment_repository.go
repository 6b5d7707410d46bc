package repositories

import (
	"goblog/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetApprovedTopLevel(postID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetApprovedTopLevel loads the approved top-level comments of a post,
// oldest first, each with its author and threaded replies.
func (r *commentRepository) GetApprovedTopLevel(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at") }).
		Preload("Replies.Author").
		Where("post_id = ? AND is_approved = ? AND parent_id IS NULL", postID, true).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}
