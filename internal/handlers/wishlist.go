package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/models"
)

// WishlistHandler manages the per-user saved-product set.
type WishlistHandler struct {
	db *gorm.DB
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

// GetWishlist returns the caller's saved products, skipping inactive ones.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var entries []models.WishlistEntry
	if err := h.db.Preload("Product.Category").
		Joins("JOIN products ON products.id = wishlist_entries.product_id AND products.is_active = ?", true).
		Where("wishlist_entries.user_id = ?", user.ID).
		Order("wishlist_entries.created_at DESC").
		Find(&entries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

// AddToWishlist saves a product. A duplicate add is a silent no-op.
func (h *WishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	entry := models.WishlistEntry{UserID: user.ID, ProductID: productID}
	if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product added to wishlist"})
}

// RemoveFromWishlist drops a product from the caller's wishlist.
func (h *WishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := h.db.Where("user_id = ? AND product_id = ?", user.ID, productID).
		Delete(&models.WishlistEntry{}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product removed from wishlist"})
}
