package models

import "github.com/google/uuid"

// BlogAuthor represents a blog post author shown on post pages.
type BlogAuthor struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Bio       *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
}
