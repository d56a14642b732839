package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type ProductCategoryRepo struct {
	db *gorm.DB
}

func NewProductCategoryRepo(db *gorm.DB) *ProductCategoryRepo {
	return &ProductCategoryRepo{db}
}

// FindAll returns all product categories from the database
func (r *ProductCategoryRepo) FindAll() ([]*models.ProductCategory, error) {
	var categories []*models.ProductCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

// FindByID returns a product category by its ID
func (r *ProductCategoryRepo) FindByID(id uuid.UUID) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new product category into the database
func (r *ProductCategoryRepo) Add(category *models.ProductCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing product category in the database
func (r *ProductCategoryRepo) Update(category *models.ProductCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a product category from the database by id
func (r *ProductCategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProductCategory{}, id).Error
}
