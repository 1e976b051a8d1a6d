package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/models"
	"github.com/example/stylehub/internal/services"
	"github.com/example/stylehub/internal/utils"
)

// OrderHandler exposes the order lifecycle to customers.
type OrderHandler struct {
	db       *gorm.DB
	orders   *services.OrderService
	reviews  *services.ReviewService
	activity *services.ActivityService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, orders *services.OrderService, reviews *services.ReviewService, activity *services.ActivityService) *OrderHandler {
	return &OrderHandler{db: db, orders: orders, reviews: reviews, activity: activity}
}

type createOrderRequest struct {
	OrderNumber        string  `json:"order_number"`
	Subtotal           float64 `json:"subtotal"`
	ShippingCost       float64 `json:"shipping_cost"`
	Total              float64 `json:"total"`
	PaymentMethod      string  `json:"payment_method" validate:"required"`
	ShippingName       string  `json:"shipping_name" validate:"required"`
	ShippingPhone      string  `json:"shipping_phone" validate:"required"`
	ShippingAddress    string  `json:"shipping_address" validate:"required"`
	ShippingCity       string  `json:"shipping_city" validate:"required"`
	ShippingPostalCode string  `json:"shipping_postal_code" validate:"required"`
}

// CreateOrder places an order from the caller's cart.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	order, err := h.orders.Create(user.ID, services.CreateOrderInput{
		OrderNumber:   req.OrderNumber,
		Subtotal:      req.Subtotal,
		ShippingCost:  req.ShippingCost,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Shipping: services.ShippingDetails{
			Name:       req.ShippingName,
			Phone:      req.ShippingPhone,
			Address:    req.ShippingAddress,
			City:       req.ShippingCity,
			PostalCode: req.ShippingPostalCode,
		},
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
		}
		return err
	}

	h.activity.Record(user.ID, "create_order",
		fmt.Sprintf("Order %s created with total %.2f", order.OrderNumber, order.Total),
		c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// ListOrders returns the caller's orders with an optional status filter.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{}).Where("user_id = ?", user.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pg.Envelope(total),
	})
}

// GetOrder returns a single order. Admins may read any order; everyone else
// only their own.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	scope := &user.ID
	if user.IsAdmin() {
		scope = nil
	}

	order, err := h.orders.Find(id, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// OrderStats returns the caller's aggregate order history.
func (h *OrderHandler) OrderStats(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := h.orders.Stats(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// CancelOrder cancels the caller's order unless it is delivered or already
// cancelled.
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.orders.Cancel(user.ID, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		case errors.Is(err, services.ErrOrderNotCancellable):
			return fiber.NewError(fiber.StatusBadRequest, "cannot cancel this order")
		}
		return err
	}

	h.activity.Record(user.ID, "cancel_order",
		fmt.Sprintf("Order %s cancelled", id),
		c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"success": true, "message": "Order cancelled successfully"})
}

type purchaseReviewRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreatePurchaseReview reviews a delivered order item. Eligibility is gated
// on delivery and the item's is_reviewed flag, not on review uniqueness.
func (h *OrderHandler) CreatePurchaseReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req purchaseReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	review, err := h.reviews.ReviewPurchasedItem(user.ID, services.PurchaseReviewInput{
		OrderID:   orderID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotEligible),
			errors.Is(err, services.ErrItemAlreadyReviewed):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	h.activity.Record(user.ID, "create_review",
		fmt.Sprintf("Created review for product %s with rating %d", productID, req.Rating),
		c.IP(), c.Get("User-Agent"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review created successfully",
		"data":    fiber.Map{"id": review.ID},
	})
}

// OrderItemReviews returns the caller's order with per-item review status.
// Items carry is_reviewed and review_id, so the full order is the answer.
func (h *OrderHandler) OrderItemReviews(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.Find(id, &user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}
