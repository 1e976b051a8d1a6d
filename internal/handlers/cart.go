package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/services"
)

// CartHandler exposes the cart line-item operations.
type CartHandler struct {
	cart *services.CartService
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetCart returns the caller's cart joined with live product fields.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	lines, err := h.cart.Items(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": lines})
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddToCart adds quantity units of a product, merging with an existing line.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" || req.Quantity == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "product id and quantity are required")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := h.cart.Add(user.ID, productID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Item added to cart successfully",
	})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity (minimum 1, own lines only).
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	lineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item id")
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.cart.UpdateQuantity(user.ID, lineID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrCartItemNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "failed to update cart item")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cart item updated successfully"})
}

// RemoveFromCart deletes one line owned by the caller.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	lineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item id")
	}

	if err := h.cart.Remove(user.ID, lineID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "failed to remove item from cart")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Item removed from cart successfully"})
}

// ClearCart empties the cart. Always succeeds, even when already empty.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.cart.Clear(user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cart cleared successfully"})
}
