package services

import (
	"errors"

	"goblog/forms"
	"goblog/models"
	"goblog/repositories"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type CommentService interface {
	AddComment(postSlug string, authorID uint, req models.CommentRequest) (*models.Comment, forms.Errors, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment validates and stores a comment on a published post. A
// non-empty Errors map means validation failed and nothing was written.
func (s *commentService) AddComment(postSlug string, authorID uint, req models.CommentRequest) (*models.Comment, forms.Errors, error) {
	post, err := s.postRepo.GetPublishedBySlug(postSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}

	if errs := forms.ValidateComment(req); !errs.Valid() {
		return nil, errs, nil
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, nil, err
	}

	comment := &models.Comment{
		PostID:     post.ID,
		AuthorID:   author.ID,
		Content:    req.Content,
		IsApproved: true,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, nil, err
	}

	comment.Author = *author
	return comment, nil, nil
}
