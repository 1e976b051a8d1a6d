package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stylehub/internal/models"
)

// CartService owns the per-user line-item collection that orders are created
// from.
type CartService struct {
	db *gorm.DB
}

// NewCartService constructs CartService.
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// CartLine is a cart item joined with the live product fields the storefront
// displays alongside it.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Stock     int       `json:"stock"`
	Slug      string    `json:"slug"`
}

// Items returns the user's cart joined with product data. Lines whose product
// has been deactivated silently disappear from the view.
func (s *CartService) Items(userID uuid.UUID) ([]CartLine, error) {
	return s.itemsTx(s.db, userID)
}

func (s *CartService) itemsTx(tx *gorm.DB, userID uuid.UUID) ([]CartLine, error) {
	var lines []CartLine
	err := tx.Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.image, products.stock, products.slug").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ? AND products.is_active = ?", userID, true).
		Order("cart_items.created_at").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Add puts quantity units of a product into the cart. An existing line for
// the same product is merged with a single upsert so concurrent adds cannot
// race on check-then-insert. Stock is not checked here.
func (s *CartService) Add(userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
}

// UpdateQuantity sets a line's quantity. The line must belong to the caller.
func (s *CartService) UpdateQuantity(userID, lineID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	res := s.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Remove deletes a single line owned by the caller.
func (s *CartService) Remove(userID, lineID uuid.UUID) error {
	res := s.db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear drops every line in the user's cart. Clearing an empty cart succeeds:
// the goal is an empty cart, not a deletion count.
func (s *CartService) Clear(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
