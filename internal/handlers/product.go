package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
	"github.com/example/stylehub/internal/utils"
)

// ProductHandler serves the public catalog.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListProducts returns active products with search, category filter, sort,
// and pagination. The count shares the filtered query so it always mirrors
// the listing predicate.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", q, q)
	}

	if category := c.Query("category"); category != "" {
		if id, err := uuid.Parse(category); err == nil {
			query = query.Where("categories.id = ? OR categories.slug = ?", id, category)
		} else {
			query = query.Where("categories.slug = ?", category)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	switch c.Query("sort", "latest") {
	case "price_asc":
		query = query.Order("products.price ASC")
	case "price_desc":
		query = query.Order("products.price DESC")
	case "name":
		query = query.Order("products.name ASC")
	case "popular":
		query = query.Order("products.reviews_count DESC, products.rating DESC")
	default:
		query = query.Order("products.created_at DESC")
	}

	var products []models.Product
	if err := query.Preload("Category").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       products,
		"pagination": pg.Envelope(total),
	})
}

// FeaturedProducts returns the featured subset of the active catalog.
func (h *ProductHandler) FeaturedProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 6)

	var products []models.Product
	if err := h.db.Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}

type categoryWithCount struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// ListCategories returns every category with its active-product count.
func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	var categories []categoryWithCount
	if err := h.db.Model(&models.Category{}).
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.is_active = ?", true).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// ProductsByCategory returns active products in the category with the given slug.
func (h *ProductHandler) ProductsByCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ? AND categories.slug = ?", true, slug)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Category").
		Order("products.created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       products,
		"pagination": pg.Envelope(total),
	})
}

// GetProduct returns a single active product with its reviews.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User").
		First(&product, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}
