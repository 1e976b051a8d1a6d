package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/services"
	"github.com/example/stylehub/internal/utils"
)

// ReviewHandler serves the direct (not order-scoped) review path.
type ReviewHandler struct {
	reviews  *services.ReviewService
	activity *services.ActivityService
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(reviews *services.ReviewService, activity *services.ActivityService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, activity: activity}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// CreateReview adds a plain product review. One review per (user, product)
// on this path.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	review, err := h.reviews.ReviewProductDirect(user.ID, productID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		case errors.Is(err, services.ErrAlreadyReviewed):
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
		"data":    review,
	})
}

// UpdateReview edits the caller's own review.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	if err := h.reviews.Update(user.ID, reviewID, req.Rating, req.Comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "review not found or not yours to edit")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Review updated successfully"})
}

// DeleteReview removes a review; owners may delete their own, admins any.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
	}

	if err := h.reviews.Delete(user.ID, user.IsAdmin(), reviewID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		case errors.Is(err, services.ErrReviewForbidden):
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Review deleted successfully"})
}
