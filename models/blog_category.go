package models

import "github.com/google/uuid"

// BlogCategory represents a blog category; a post belongs to at most one.
type BlogCategory struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
}
