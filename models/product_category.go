package models

import "github.com/google/uuid"

// ProductCategory represents a storefront catalog category
type ProductCategory struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
}
