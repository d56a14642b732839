package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type BlogCategoryRepo struct {
	db *gorm.DB
}

func NewBlogCategoryRepo(db *gorm.DB) *BlogCategoryRepo {
	return &BlogCategoryRepo{db}
}

// FindAll returns all blog categories from the database
func (r *BlogCategoryRepo) FindAll() ([]*models.BlogCategory, error) {
	var categories []*models.BlogCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

// FindByID returns a blog category by its ID
func (r *BlogCategoryRepo) FindByID(id uuid.UUID) (*models.BlogCategory, error) {
	var category models.BlogCategory
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindBySlug returns a blog category by its slug
func (r *BlogCategoryRepo) FindBySlug(slug string) (*models.BlogCategory, error) {
	var category models.BlogCategory
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new blog category into the database
func (r *BlogCategoryRepo) Add(category *models.BlogCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing blog category in the database
func (r *BlogCategoryRepo) Update(category *models.BlogCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a blog category from the database by id
func (r *BlogCategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogCategory{}, id).Error
}
