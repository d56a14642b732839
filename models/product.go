package models

import (
	"time"

	"github.com/google/uuid"
)

// Product detail page layout variants supported by the storefront.
const (
	LayoutStyleClassic = "classic"
	LayoutStyleChat    = "chat"
)

// Product represents a storefront catalog item
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	Price       int64      `json:"price" db:"price" gorm:"type:bigint;not null;default:0"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	LayoutStyle string     `json:"layoutStyle" db:"layout_style" gorm:"type:text;not null;default:'classic'"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid;index:idx_product_category"`
	Featured    bool       `json:"featured" db:"featured" gorm:"type:boolean;not null;default:false"`
	Active      bool       `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`

	Category *ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
