package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a catalog entry. Rating and ReviewsCount are denormalized
// aggregates recomputed from the reviews table on every review mutation.
type Product struct {
	BaseModel
	Name         string         `json:"name"`
	Slug         string         `gorm:"uniqueIndex" json:"slug"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	OldPrice     *float64       `json:"old_price"`
	Stock        int            `json:"stock"`
	Image        string         `json:"image"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	Category     *Category      `json:"category,omitempty"`
	IsFeatured   bool           `json:"is_featured"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	Rating       float64        `json:"rating"`
	ReviewsCount int            `json:"reviews_count"`
	Reviews      []Review       `json:"reviews,omitempty"`
}

// Category groups products. Deletion is blocked while products reference it.
type Category struct {
	BaseModel
	Name        string    `json:"name"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
}
