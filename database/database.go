package database

import (
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type Database struct {
	blogPostRepo        *BlogPostRepo
	blogTagRepo         *BlogTagRepo
	blogCategoryRepo    *BlogCategoryRepo
	blogAuthorRepo      *BlogAuthorRepo
	productRepo         *ProductRepo
	productCategoryRepo *ProductCategoryRepo
	pageRepo            *PageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:        NewBlogPostRepo(db),
		blogTagRepo:         NewBlogTagRepo(db),
		blogCategoryRepo:    NewBlogCategoryRepo(db),
		blogAuthorRepo:      NewBlogAuthorRepo(db),
		productRepo:         NewProductRepo(db),
		productCategoryRepo: NewProductCategoryRepo(db),
		pageRepo:            NewPageRepo(db),
	}
}

// Migrate brings the schema up to date for every model this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.BlogCategory{},
		&models.BlogAuthor{},
		&models.BlogPost{},
		&models.BlogTag{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Page{},
	)
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) BlogTagRepo() *BlogTagRepo {
	return d.blogTagRepo
}

func (d Database) BlogCategoryRepo() *BlogCategoryRepo {
	return d.blogCategoryRepo
}

func (d Database) BlogAuthorRepo() *BlogAuthorRepo {
	return d.blogAuthorRepo
}

func (d Database) ProductRepo() *ProductRepo {
	return d.productRepo
}

func (d Database) ProductCategoryRepo() *ProductCategoryRepo {
	return d.productCategoryRepo
}

func (d Database) PageRepo() *PageRepo {
	return d.pageRepo
}
