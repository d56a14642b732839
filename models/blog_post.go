package models

import (
	"time"

	"github.com/google/uuid"
)

// Post publication lifecycle states. Only published posts appear on the
// public API and take part in related-content and navigation resolution.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt     *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	Status      string     `json:"status" db:"status" gorm:"type:text;not null;default:'draft';index:idx_blog_post_status"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid;index:idx_blog_post_category"`
	AuthorID    *uuid.UUID `json:"authorId,omitempty" db:"author_id" gorm:"type:uuid;index:idx_blog_post_author"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp;index:idx_blog_post_published_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
	Tags        []BlogTag  `json:"tags,omitempty" gorm:"foreignKey:BlogPostID;references:ID;constraint:OnDelete:CASCADE"`

	Category *BlogCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Author   *BlogAuthor   `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}

// IsPublished reports whether the post is visible on the public API.
func (p BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// TagNames returns the post's tag values in stored order.
func (p BlogPost) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Value)
	}
	return names
}
