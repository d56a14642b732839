package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bazarche/bazarche-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogPostRepo) GetDB() *gorm.DB {
	return r.db
}

// PostFilter describes the query surface of the posts listing endpoint.
// StartDate and EndDate bound publishedAt inclusively; callers needing a
// strict boundary filter on top of the returned page.
type PostFilter struct {
	Status     string
	CategoryID *uuid.UUID
	Tag        string
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	SortOrder  string // "asc" or "desc"; defaults to "desc"
	Limit      int
	Offset     int
}

// Find returns a page of posts matching the filter plus the total match
// count. Posts are sorted by published_at with id as a tie-break, so two
// posts sharing a timestamp still order deterministically.
func (r *BlogPostRepo) Find(ctx context.Context, filter PostFilter) ([]*models.BlogPost, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BlogPost{})

	if filter.Status != "" {
		query = query.Where("blog_posts.status = ?", filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("blog_posts.category_id = ?", *filter.CategoryID)
	}
	if filter.Tag != "" {
		tagged := r.db.Model(&models.BlogTag{}).
			Select("blog_post_id").
			Where("value = ?", filter.Tag)
		query = query.Where("blog_posts.id IN (?)", tagged)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("blog_posts.title ILIKE ? OR blog_posts.excerpt ILIKE ?", pattern, pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("blog_posts.published_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("blog_posts.published_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "blog_posts.published_at DESC, blog_posts.id DESC"
	if filter.SortOrder == "asc" {
		order = "blog_posts.published_at ASC, blog_posts.id ASC"
	}
	query = query.Order(order)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var posts []*models.BlogPost
	err := query.Preload("Tags").Preload("Category").Preload("Author").Find(&posts).Error
	return posts, total, err
}

// FindByID returns a blog post by its ID
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").Preload("Category").Preload("Author").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a blog post by its slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").Preload("Category").Preload("Author").
		Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// The methods below let the repo serve as the related resolvers' PostStore
// without going through the HTTP client.

func (r *BlogPostRepo) PostsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.BlogPost, error) {
	posts, _, err := r.Find(ctx, PostFilter{
		Status:     models.PostStatusPublished,
		CategoryID: &categoryID,
		Limit:      limit,
	})
	return deref(posts), err
}

func (r *BlogPostRepo) PostsByTag(ctx context.Context, tag string, limit int) ([]models.BlogPost, error) {
	posts, _, err := r.Find(ctx, PostFilter{
		Status: models.PostStatusPublished,
		Tag:    tag,
		Limit:  limit,
	})
	return deref(posts), err
}

func (r *BlogPostRepo) PostsOnOrBefore(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	posts, _, err := r.Find(ctx, PostFilter{
		Status:    models.PostStatusPublished,
		EndDate:   &t,
		SortOrder: "desc",
		Limit:     limit,
	})
	return deref(posts), err
}

func (r *BlogPostRepo) PostsOnOrAfter(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	posts, _, err := r.Find(ctx, PostFilter{
		Status:    models.PostStatusPublished,
		StartDate: &t,
		SortOrder: "asc",
		Limit:     limit,
	})
	return deref(posts), err
}

func deref(posts []*models.BlogPost) []models.BlogPost {
	out := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, *p)
	}
	return out
}
