package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/models"
	"github.com/example/stylehub/internal/services"
	"github.com/example/stylehub/internal/utils"
)

// AdminHandler covers the back-office: dashboard, products, orders, users,
// categories and activity logs. Every route behind it requires the admin
// role.
type AdminHandler struct {
	db       *gorm.DB
	orders   *services.OrderService
	catalog  *services.CatalogService
	activity *services.ActivityService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, orders *services.OrderService, catalog *services.CatalogService, activity *services.ActivityService) *AdminHandler {
	return &AdminHandler{db: db, orders: orders, catalog: catalog, activity: activity}
}

type salesStats struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	PendingOrders     int64   `json:"pending_orders"`
	ProcessingOrders  int64   `json:"processing_orders"`
	ShippedOrders     int64   `json:"shipped_orders"`
	DeliveredOrders   int64   `json:"delivered_orders"`
	CancelledOrders   int64   `json:"cancelled_orders"`
	PaidOrders        int64   `json:"paid_orders"`
	UnpaidOrders      int64   `json:"unpaid_orders"`
}

type topProduct struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	CategoryName string    `json:"category_name"`
	TotalSold    int64     `json:"total_sold"`
}

type statusSlice struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int64  `json:"count"`
	Color  string `json:"color"`
}

// Dashboard aggregates the numbers the admin landing page shows: overview
// totals, the order status breakdown, the five most recent orders and the
// five best selling products.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	var totalProducts, totalOrders, totalUsers int64
	if err := h.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return err
	}
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return err
	}
	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var stats salesStats
	if err := h.db.Model(&models.Order{}).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(total), 0) AS total_revenue,
			COALESCE(AVG(total), 0) AS average_order_value,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_orders,
			COUNT(CASE WHEN status = 'processing' THEN 1 END) AS processing_orders,
			COUNT(CASE WHEN status = 'shipped' THEN 1 END) AS shipped_orders,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered_orders,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_orders,
			COUNT(CASE WHEN payment_status = 'paid' THEN 1 END) AS paid_orders,
			COUNT(CASE WHEN payment_status = 'unpaid' THEN 1 END) AS unpaid_orders`).
		Scan(&stats).Error; err != nil {
		return err
	}

	var recentOrders []models.Order
	if err := h.db.Preload("User").
		Order("created_at desc").Limit(5).
		Find(&recentOrders).Error; err != nil {
		return err
	}

	var topProducts []topProduct
	if err := h.db.Table("products p").
		Select("p.id, p.name, p.slug, p.price, p.image, c.name AS category_name, COALESCE(SUM(oi.quantity), 0) AS total_sold").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN order_items oi ON p.id = oi.product_id").
		Joins("LEFT JOIN orders o ON oi.order_id = o.id AND o.status <> ?", models.OrderStatusCancelled).
		Group("p.id, p.name, p.slug, p.price, p.image, c.name").
		Order("total_sold DESC").
		Limit(5).
		Scan(&topProducts).Error; err != nil {
		return err
	}

	ordersByStatus := []statusSlice{
		{Status: models.OrderStatusPending, Label: "Pending", Count: stats.PendingOrders, Color: "#eab308"},
		{Status: models.OrderStatusProcessing, Label: "Processing", Count: stats.ProcessingOrders, Color: "#3b82f6"},
		{Status: models.OrderStatusShipped, Label: "Shipped", Count: stats.ShippedOrders, Color: "#9333ea"},
		{Status: models.OrderStatusDelivered, Label: "Delivered", Count: stats.DeliveredOrders, Color: "#22c55e"},
		{Status: models.OrderStatusCancelled, Label: "Cancelled", Count: stats.CancelledOrders, Color: "#ef4444"},
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"overview": fiber.Map{
				"total_products": totalProducts,
				"total_orders":   totalOrders,
				"total_users":    totalUsers,
				"total_revenue":  stats.TotalRevenue,
			},
			"orders_by_status": ordersByStatus,
			"recent_orders":    recentOrders,
			"top_products":     topProducts,
		},
	})
}

// ListProducts returns all products for the back-office, inactive ones
// included.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		if id, err := uuid.Parse(category); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}
	switch c.Query("status") {
	case "active":
		query = query.Where("is_active = ?", true)
	case "inactive":
		query = query.Where("is_active = ?", false)
	case "featured":
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Category").
		Order("created_at desc").
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

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	OldPrice    *float64 `json:"old_price"`
	Stock       int      `json:"stock" validate:"min=0"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	CategoryID  *string  `json:"category_id"`
	IsFeatured  bool     `json:"is_featured"`
}

// CreateProduct creates a product. The slug is derived from the name and
// suffixed until unique.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	slug, err := utils.UniqueProductSlug(h.db, req.Name)
	if err != nil {
		return err
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Stock:       req.Stock,
		Image:       req.Image,
		Images:      pq.StringArray(req.Images),
		IsFeatured:  req.IsFeatured,
		IsActive:    true,
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}
		product.CategoryID = &categoryID
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	if err := h.db.Preload("Category").First(&product, "id = ?", product.ID).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

type updateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	OldPrice    *float64  `json:"old_price"`
	Stock       *int      `json:"stock"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	CategoryID  *string   `json:"category_id"`
	IsFeatured  *bool     `json:"is_featured"`
	IsActive    *bool     `json:"is_active"`
}

// UpdateProduct applies the provided fields. Omitted fields keep their
// values and the slug never changes after creation.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price must be greater than zero")
		}
		updates["price"] = *req.Price
	}
	if req.OldPrice != nil {
		updates["old_price"] = *req.OldPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(*req.Images)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			updates["category_id"] = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
			}
			updates["category_id"] = categoryID
		}
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		res := h.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
	}

	var product models.Product
	if err := h.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct soft-deletes a product by deactivating it. Order item
// snapshots keep their own copy of the product data either way.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res := h.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}

// ToggleFeatured flips a product's featured flag.
func (h *AdminHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := h.db.Model(&product).Update("is_featured", !product.IsFeatured).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product featured status updated"})
}

// ListOrders returns every order, filterable by status and searchable by
// order number or customer name.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(order_number) LIKE ? OR LOWER(shipping_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("User").Preload("Items").
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

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order along the fulfilment axis.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	if err := h.orders.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if admin, ok := middleware.CurrentUser(c); ok {
		h.activity.Record(admin.ID, "update_order_status",
			fmt.Sprintf("Order %s status set to %s", id, req.Status),
			c.IP(), c.Get("User-Agent"))
	}

	return c.JSON(fiber.Map{"success": true, "message": "Order status updated successfully"})
}

// UpdatePaymentStatus moves an order along the payment axis.
func (h *AdminHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	if !models.ValidPaymentStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment status")
	}

	if err := h.orders.UpdatePaymentStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Payment status updated successfully"})
}

// DeleteOrder removes an order and its items for good.
func (h *AdminHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Order deleted successfully"})
}

// ListUsers returns all accounts, searchable by name or email and
// filterable by role.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       users,
		"pagination": pg.Envelope(total),
	})
}

// GetUser returns a single account.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

type adminUpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Role       *string `json:"role"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
}

// UpdateUser applies the provided account fields, role included.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req adminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusBadRequest, "invalid role")
		}
		updates["role"] = *req.Role
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}

	if len(updates) > 0 {
		res := h.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// UpdateUserStatus activates or deactivates an account. Deactivated users
// fail authentication on their next request.
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	if req.Status != "active" && req.Status != "inactive" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	res := h.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", req.Status == "active")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "User status updated successfully"})
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if id == admin.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you cannot delete your own account")
	}

	res := h.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}

// ListCategories returns every category with its active product count.
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
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

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateCategory creates a category.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	category, err := h.catalog.CreateCategory(req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateCategory applies the provided category fields.
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.catalog.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category that has no products attached.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.catalog.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		case errors.Is(err, services.ErrCategoryInUse):
			return fiber.NewError(fiber.StatusBadRequest, "cannot delete category with products")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}

// ActivityLogs returns the most recent activity across all users.
func (h *AdminHandler) ActivityLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	logs, err := h.activity.All(limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": logs})
}
