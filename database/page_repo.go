package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type PageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) *PageRepo {
	return &PageRepo{db}
}

// FindAll returns pages from the database, optionally only published ones
func (r *PageRepo) FindAll(publishedOnly bool) ([]*models.Page, error) {
	query := r.db.Order("title")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var pages []*models.Page
	err := query.Find(&pages).Error
	return pages, err
}

// FindByID returns a page by its ID
func (r *PageRepo) FindByID(id uuid.UUID) (*models.Page, error) {
	var page models.Page
	err := r.db.First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// FindBySlug returns a page by its slug
func (r *PageRepo) FindBySlug(slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Add inserts a new page into the database
func (r *PageRepo) Add(page *models.Page) error {
	return r.db.Create(page).Error
}

// Update updates an existing page in the database
func (r *PageRepo) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

// Delete removes a page from the database by id
func (r *PageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Page{}, id).Error
}
