package api

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bazarche/bazarche-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, s3Client *s3.Client, adminPasswordHash string, jwtSecret []byte, uploadBucket, uploadBaseURL string) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(adminPasswordHash, jwtSecret),
		blogPostHandler:     newBlogPostHandler(database.BlogPostRepo(), database.BlogTagRepo()),
		blogTaxonomyHandler: newBlogTaxonomyHandler(database.BlogCategoryRepo(), database.BlogAuthorRepo(), database.BlogTagRepo()),
		productHandler:      newProductHandler(database.ProductRepo(), database.ProductCategoryRepo()),
		pageHandler:         newPageHandler(database.PageRepo()),
		uploadHandler:       newUploadHandler(s3Client, uploadBucket, uploadBaseURL),
	}
}
