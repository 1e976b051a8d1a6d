package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// OrderStatuses lists every value accepted for Order.Status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// PaymentStatuses lists every value accepted for Order.PaymentStatus.
var PaymentStatuses = []string{
	PaymentStatusUnpaid,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order is created from a cart snapshot at checkout. The shipping fields and
// line items are frozen at creation; only the status axes and their timestamps
// mutate afterwards.
type Order struct {
	BaseModel
	UserID             uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User               *User       `json:"user,omitempty"`
	OrderNumber        string      `gorm:"uniqueIndex" json:"order_number"`
	Status             string      `gorm:"default:pending" json:"status"`
	PaymentStatus      string      `gorm:"default:unpaid" json:"payment_status"`
	Subtotal           float64     `json:"subtotal"`
	ShippingCost       float64     `json:"shipping_cost"`
	Total              float64     `json:"total"`
	PaymentMethod      string      `json:"payment_method"`
	ShippingName       string      `json:"shipping_name"`
	ShippingPhone      string      `json:"shipping_phone"`
	ShippingAddress    string      `json:"shipping_address"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	PaidAt             *time.Time  `json:"paid_at"`
	ShippedAt          *time.Time  `json:"shipped_at"`
	DeliveredAt        *time.Time  `json:"delivered_at"`
	CancelledAt        *time.Time  `json:"cancelled_at"`
	Items              []OrderItem `json:"items,omitempty"`
}

// CanCancel reports whether the order may still be cancelled. Delivered and
// cancelled are terminal for the cancellation path.
func (o *Order) CanCancel() bool {
	return o.Status != OrderStatusDelivered && o.Status != OrderStatusCancelled
}

// OrderItem snapshots a product at purchase time. ProductName and
// ProductPrice never follow later catalog edits, so order history stays
// accurate even when the product is renamed, repriced, or soft-deleted.
type OrderItem struct {
	BaseModel
	OrderID      uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID    *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName  string     `json:"product_name"`
	ProductPrice float64    `json:"product_price"`
	Quantity     int        `json:"quantity"`
	Subtotal     float64    `json:"subtotal"`
	IsReviewed   bool       `json:"is_reviewed"`
	ReviewID     *uuid.UUID `gorm:"type:uuid" json:"review_id"`
}
