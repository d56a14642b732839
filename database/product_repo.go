package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db}
}

// ProductFilter describes the catalog listing query surface.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Featured   *bool
	ActiveOnly bool
	Search     string
	Limit      int
	Offset     int
}

// Find returns a page of products matching the filter plus the total count
func (r *ProductRepo) Find(filter ProductFilter) ([]*models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []*models.Product
	err := query.Preload("Category").Find(&products).Error
	return products, total, err
}

// FindByID returns a product by its ID
func (r *ProductRepo) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlug returns a product by its slug
func (r *ProductRepo) FindBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Add inserts a new product into the database
func (r *ProductRepo) Add(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates an existing product in the database
func (r *ProductRepo) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product from the database by id
func (r *ProductRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, id).Error
}
