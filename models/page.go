package models

import (
	"time"

	"github.com/google/uuid"
)

// Page represents an admin-managed static content page (about, contact, ...).
type Page struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug      string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Title     string     `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string     `json:"content" db:"content" gorm:"type:text;not null"`
	Published bool       `json:"published" db:"published" gorm:"type:boolean;not null;default:true"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
}
