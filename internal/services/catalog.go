package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
	"github.com/example/stylehub/internal/utils"
)

// CatalogService owns the back-office category rules. Product reads stay in
// the handlers; category writes share enough rules to live here.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CreateCategory creates a category with a slug derived from the name.
func (s *CatalogService) CreateCategory(name, description string) (*models.Category, error) {
	category := models.Category{
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: description,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory applies the given fields. A new name regenerates the slug.
func (s *CatalogService) UpdateCategory(id uuid.UUID, name, description *string) (*models.Category, error) {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
		updates["slug"] = utils.Slugify(*name)
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Categories that still have products
// attached, active or not, cannot be deleted.
func (s *CatalogService) DeleteCategory(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}

		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}
