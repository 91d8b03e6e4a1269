package models

import "gorm.io/gorm"

// Product represents a product in the catalog.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name          string   `json:"name" validate:"required,min=3,max=100"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Description   string   `json:"description" validate:"omitempty,max=500"`
	Images        []string `json:"images" gorm:"serializer:json"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags" gorm:"serializer:json"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
	Trending      bool     `json:"trending,omitempty"`
	Recommended   bool     `json:"recommended,omitempty"`
	gorm.Model    `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
