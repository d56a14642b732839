package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type BlogTagRepo struct {
	db *gorm.DB
}

func NewBlogTagRepo(db *gorm.DB) *BlogTagRepo {
	return &BlogTagRepo{db}
}

// FindAll returns all blog tags from the database
func (r *BlogTagRepo) FindAll() ([]*models.BlogTag, error) {
	var tags []*models.BlogTag
	err := r.db.Find(&tags).Error
	return tags, err
}

// DistinctValues returns the deduplicated tag values across published posts
func (r *BlogTagRepo) DistinctValues() ([]string, error) {
	var values []string
	err := r.db.Model(&models.BlogTag{}).
		Joins("JOIN blog_posts ON blog_posts.id = blog_tags.blog_post_id").
		Where("blog_posts.status = ?", models.PostStatusPublished).
		Distinct("blog_tags.value").
		Order("blog_tags.value").
		Pluck("blog_tags.value", &values).Error
	return values, err
}

// Add inserts a new blog tag into the database
func (r *BlogTagRepo) Add(tag *models.BlogTag) error {
	return r.db.Create(tag).Error
}

// DeleteForPost removes every tag belonging to a blog post
func (r *BlogTagRepo) DeleteForPost(blogPostID uuid.UUID) error {
	return r.db.Where("blog_post_id = ?", blogPostID).Delete(&models.BlogTag{}).Error
}
