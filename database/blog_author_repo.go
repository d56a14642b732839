package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type BlogAuthorRepo struct {
	db *gorm.DB
}

func NewBlogAuthorRepo(db *gorm.DB) *BlogAuthorRepo {
	return &BlogAuthorRepo{db}
}

// FindAll returns all blog authors from the database
func (r *BlogAuthorRepo) FindAll() ([]*models.BlogAuthor, error) {
	var authors []*models.BlogAuthor
	err := r.db.Order("name").Find(&authors).Error
	return authors, err
}

// FindByID returns a blog author by its ID
func (r *BlogAuthorRepo) FindByID(id uuid.UUID) (*models.BlogAuthor, error) {
	var author models.BlogAuthor
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// FindBySlug returns a blog author by its slug
func (r *BlogAuthorRepo) FindBySlug(slug string) (*models.BlogAuthor, error) {
	var author models.BlogAuthor
	err := r.db.Where("slug = ?", slug).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Add inserts a new blog author into the database
func (r *BlogAuthorRepo) Add(author *models.BlogAuthor) error {
	return r.db.Create(author).Error
}

// Update updates an existing blog author in the database
func (r *BlogAuthorRepo) Update(author *models.BlogAuthor) error {
	return r.db.Save(author).Error
}

// Delete removes a blog author from the database by id
func (r *BlogAuthorRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogAuthor{}, id).Error
}
