package repositories

import (
	"goblog/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	Update(post *models.Post) error
	GetPublishedBySlug(slug string) (*models.Post, error)
	GetFeatured(limit int) ([]models.Post, error)
	GetRecent(limit int) ([]models.Post, error)
	GetPublishedList(page, limit int) ([]models.Post, int64, error)
	GetByCategory(categoryID uint, page, limit int) ([]models.Post, int64, error)
	GetByAuthor(authorID uint) ([]models.Post, error)
	GetRelated(post *models.Post, limit int) ([]models.Post, error)
	Search(query string, page, limit int) ([]models.Post, int64, error)
	IncrementViews(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) GetPublishedBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	return &post, err
}

func (r *postRepository) GetFeatured(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Where("is_published = ?", true).
		Order("published_at desc").
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Preload("Category").
		Where("is_published = ?", true).
		Order("published_at desc").
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetPublishedList(page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Where("is_published = ?", true)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Order("published_at desc").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) GetByCategory(categoryID uint, page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).
		Where("category_id = ? AND is_published = ?", categoryID, true)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Preload("Author").
		Preload("Category").
		Order("published_at desc").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) GetByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Category").
		Where("author_id = ?", authorID).
		Order("published_at desc").
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

// GetRelated finds other published posts in the same category, the
// post itself excluded. Posts without a category relate to other
// uncategorized posts.
func (r *postRepository) GetRelated(post *models.Post, limit int) ([]models.Post, error) {
	var posts []models.Post

	query := r.db.Where("is_published = ? AND id <> ?", true, post.ID)
	if post.CategoryID != nil {
		query = query.Where("category_id = ?", *post.CategoryID)
	} else {
		query = query.Where("category_id IS NULL")
	}

	err := query.Preload("Author").
		Preload("Category").
		Order("published_at desc").
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Search matches the query as a case-insensitive substring of the
// title, content, or excerpt of published posts.
func (r *postRepository) Search(query string, page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Post{}).Distinct().
		Where("is_published = ?", true).
		Where(
			r.db.Where("LOWER(title) LIKE LOWER(?)", pattern).
				Or("LOWER(content) LIKE LOWER(?)", pattern).
				Or("LOWER(excerpt) LIKE LOWER(?)", pattern),
		)
	q.Count(&total)

	offset := (page - 1) * limit
	err := q.Preload("Author").
		Preload("Category").
		Order("published_at desc").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

// IncrementViews pushes the counter update down to the store so that
// concurrent views of the same post are serialized by the database.
func (r *postRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}
