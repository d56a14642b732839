package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes sets up the public content routes and the authenticated admin routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public storefront and blog routes
	r.Group(func(r chi.Router) {
		r.Get("/posts", handlers.blogPostHandler.listPosts())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Get("/blog-post/{blogPostID}/related", handlers.blogPostHandler.getRelatedPosts())
		r.Get("/blog-post/{blogPostID}/navigation", handlers.blogPostHandler.getPostNavigation())
		r.Get("/blog/{slug}", handlers.blogPostHandler.getBlogPostBySlug())
		r.Get("/blog-categories", handlers.blogTaxonomyHandler.listCategories())
		r.Get("/blog-authors", handlers.blogTaxonomyHandler.listAuthors())
		r.Get("/blog-tags", handlers.blogTaxonomyHandler.listTags())

		r.Get("/products", handlers.productHandler.listProducts(false))
		r.Get("/product/{productRef}", handlers.productHandler.getProduct())
		r.Get("/product-categories", handlers.productHandler.listProductCategories())

		r.Get("/pages", handlers.pageHandler.listPages(false))
		r.Get("/page/{slug}", handlers.pageHandler.getPageBySlug())

		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin dashboard routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/admin/blog-posts", handlers.blogPostHandler.listAllPosts())
		r.Post("/admin/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/admin/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/admin/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Post("/admin/blog-category", handlers.blogTaxonomyHandler.createCategory())
		r.Put("/admin/blog-category/{categoryID}", handlers.blogTaxonomyHandler.updateCategory())
		r.Delete("/admin/blog-category/{categoryID}", handlers.blogTaxonomyHandler.deleteCategory())
		r.Post("/admin/blog-author", handlers.blogTaxonomyHandler.createAuthor())
		r.Put("/admin/blog-author/{authorID}", handlers.blogTaxonomyHandler.updateAuthor())
		r.Delete("/admin/blog-author/{authorID}", handlers.blogTaxonomyHandler.deleteAuthor())

		r.Get("/admin/products", handlers.productHandler.listProducts(true))
		r.Post("/admin/product", handlers.productHandler.createProduct())
		r.Put("/admin/product/{productID}", handlers.productHandler.updateProduct())
		r.Delete("/admin/product/{productID}", handlers.productHandler.deleteProduct())
		r.Post("/admin/product-category", handlers.productHandler.createProductCategory())
		r.Delete("/admin/product-category/{categoryID}", handlers.productHandler.deleteProductCategory())

		r.Get("/admin/pages", handlers.pageHandler.listPages(true))
		r.Post("/admin/page", handlers.pageHandler.createPage())
		r.Put("/admin/page/{pageID}", handlers.pageHandler.updatePage())
		r.Delete("/admin/page/{pageID}", handlers.pageHandler.deletePage())

		r.Post("/admin/upload", handlers.uploadHandler.uploadImage())
	})
}
