package utils

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run into a
// single dash.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// UniqueProductSlug derives a slug from the product name, appending a numeric
// suffix until it no longer collides with an existing product.
func UniqueProductSlug(db *gorm.DB, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "product"
	}

	slug := base
	for i := 1; ; i++ {
		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
