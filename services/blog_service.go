package services

import (
	"goblog/models"
	"goblog/repositories"
)

const (
	PostsPerPage  = 10
	featuredLimit = 6
	recentLimit   = 5
	relatedLimit  = 3
)

// HomePage is the context for the homepage: featured and recent posts
// plus the active categories with their post counts.
type HomePage struct {
	FeaturedPosts []models.Post     `json:"featured_posts"`
	RecentPosts   []models.Post     `json:"recent_posts"`
	Categories    []models.Category `json:"categories"`
}

// PostDetail is the context for a single post page.
type PostDetail struct {
	Post         *models.Post     `json:"post"`
	Comments     []models.Comment `json:"comments"`
	RelatedPosts []models.Post    `json:"related_posts"`
}

type BlogService interface {
	GetHomePage() (*HomePage, error)
	GetPostList(page int) ([]models.Post, int64, error)
	GetPostDetail(slug string) (*PostDetail, error)
	GetCategoryPosts(slug string, page int) (*models.Category, []models.Post, int64, error)
	SearchPosts(query string, page int) ([]models.Post, int64, error)
}

type blogService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	commentRepo  repositories.CommentRepository
}

func NewBlogService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, commentRepo repositories.CommentRepository) BlogService {
	return &blogService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
	}
}

func (s *blogService) GetHomePage() (*HomePage, error) {
	featured, err := s.postRepo.GetFeatured(featuredLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.postRepo.GetRecent(recentLimit)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetActive()
	if err != nil {
		return nil, err
	}

	counts, err := s.categoryRepo.CountPostsByCategory()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].PostCount = counts[categories[i].ID]
	}

	return &HomePage{
		FeaturedPosts: featured,
		RecentPosts:   recent,
		Categories:    categories,
	}, nil
}

func (s *blogService) GetPostList(page int) ([]models.Post, int64, error) {
	return s.postRepo.GetPublishedList(page, PostsPerPage)
}

// GetPostDetail loads a published post by slug, bumps its view counter,
// and gathers the comment thread and related posts.
func (s *blogService) GetPostDetail(slug string) (*PostDetail, error) {
	post, err := s.postRepo.GetPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}

	// Every successful fetch counts as a view, repeat visitors included.
	if err := s.postRepo.IncrementViews(post.ID); err != nil {
		return nil, err
	}
	post.ViewsCount++

	comments, err := s.commentRepo.GetApprovedTopLevel(post.ID)
	if err != nil {
		return nil, err
	}

	related, err := s.postRepo.GetRelated(post, relatedLimit)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:         post,
		Comments:     comments,
		RelatedPosts: related,
	}, nil
}

func (s *blogService) GetCategoryPosts(slug string, page int) (*models.Category, []models.Post, int64, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, 0, err
	}

	posts, total, err := s.postRepo.GetByCategory(category.ID, page, PostsPerPage)
	return category, posts, total, err
}

// SearchPosts returns published posts matching the query. An empty
// query short-circuits to an empty result without touching the store.
func (s *blogService) SearchPosts(query string, page int) ([]models.Post, int64, error) {
	if query == "" {
		return []models.Post{}, 0, nil
	}
	return s.postRepo.Search(query, page, PostsPerPage)
}
