package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
)

// OrderService implements the cart-to-order transition and the two status
// state machines. Order creation snapshots cart lines into immutable order
// items and drains the cart in the same transaction.
type OrderService struct {
	db   *gorm.DB
	cart *CartService
}

// NewOrderService constructs OrderService.
func NewOrderService(db *gorm.DB, cart *CartService) *OrderService {
	return &OrderService{db: db, cart: cart}
}

// ShippingDetails is the checkout form snapshot copied onto the order. It is
// taken from the request as submitted, independent of the user's profile.
type ShippingDetails struct {
	Name       string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// CreateOrderInput carries the client-submitted checkout payload. Totals are
// persisted verbatim; the server does not recompute them from cart prices.
type CreateOrderInput struct {
	OrderNumber   string
	Subtotal      float64
	ShippingCost  float64
	Total         float64
	PaymentMethod string
	Shipping      ShippingDetails
}

// Create builds an order from the caller's current cart. Reading the cart,
// inserting the order with its item snapshots, and draining the cart happen
// in one transaction so a drained cart is never observed without its order.
func (s *OrderService) Create(userID uuid.UUID, in CreateOrderInput) (*models.Order, error) {
	var orderID uuid.UUID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		lines, err := s.cart.itemsTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order := models.Order{
			UserID:             userID,
			OrderNumber:        in.OrderNumber,
			Status:             models.OrderStatusPending,
			PaymentStatus:      models.PaymentStatusUnpaid,
			Subtotal:           in.Subtotal,
			ShippingCost:       in.ShippingCost,
			Total:              in.Total,
			PaymentMethod:      in.PaymentMethod,
			ShippingName:       in.Shipping.Name,
			ShippingPhone:      in.Shipping.Phone,
			ShippingAddress:    in.Shipping.Address,
			ShippingCity:       in.Shipping.City,
			ShippingPostalCode: in.Shipping.PostalCode,
		}
		if order.OrderNumber == "" {
			order.OrderNumber = generateOrderNumber()
		}

		for _, line := range lines {
			productID := line.ProductID
			order.Items = append(order.Items, models.OrderItem{
				ProductID:    &productID,
				ProductName:  line.Name,
				ProductPrice: line.Price,
				Quantity:     line.Quantity,
				Subtotal:     line.Price * float64(line.Quantity),
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Find returns a single order with items. When userID is non-nil the lookup
// is scoped to that owner.
func (s *OrderService) Find(id uuid.UUID, userID *uuid.UUID) (*models.Order, error) {
	query := s.db.Preload("Items")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var order models.Order
	if err := query.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel marks the order cancelled if it is not already in a terminal state
// for cancellation. No inventory is restocked.
func (s *OrderService) Cancel(userID, orderID uuid.UUID) error {
	var order models.Order
	if err := s.db.First(&order, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
		return err
	}

	if !order.CanCancel() {
		return ErrOrderNotCancellable
	}

	now := time.Now()
	return s.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"status":       models.OrderStatusCancelled,
		"cancelled_at": &now,
	}).Error
}

// UpdateStatus moves the order along the fulfilment axis, stamping the
// timestamp that belongs to the new state.
func (s *OrderService) UpdateStatus(id uuid.UUID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	now := time.Now()
	updates := map[string]interface{}{"status": status}
	switch status {
	case models.OrderStatusShipped:
		updates["shipped_at"] = &now
	case models.OrderStatusDelivered:
		updates["delivered_at"] = &now
	case models.OrderStatusCancelled:
		updates["cancelled_at"] = &now
	}

	res := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePaymentStatus moves the order along the payment axis, independent of
// the fulfilment status. Entering paid stamps paid_at.
func (s *OrderService) UpdatePaymentStatus(id uuid.UUID, status string) error {
	if !models.ValidPaymentStatus(status) {
		return fmt.Errorf("invalid payment status %q", status)
	}

	updates := map[string]interface{}{"payment_status": status}
	if status == models.PaymentStatusPaid {
		now := time.Now()
		updates["paid_at"] = &now
	}

	res := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UserStats aggregates a user's order history for the account page.
type UserStats struct {
	TotalOrders      int64   `json:"total_orders"`
	TotalSpent       float64 `json:"total_spent"`
	PendingOrders    int64   `json:"pending_orders"`
	ProcessingOrders int64   `json:"processing_orders"`
	CompletedOrders  int64   `json:"completed_orders"`
	CancelledOrders  int64   `json:"cancelled_orders"`
}

// Stats returns per-status counts and total spend for one user.
func (s *OrderService) Stats(userID uuid.UUID) (*UserStats, error) {
	var stats UserStats
	err := s.db.Model(&models.Order{}).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(total), 0) AS total_spent,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_orders,
			COUNT(CASE WHEN status = 'processing' THEN 1 END) AS processing_orders,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS completed_orders,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_orders`).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}
