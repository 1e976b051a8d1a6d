package services

import "errors"

// Sentinel errors returned by the domain services. Handlers translate these
// into HTTP statuses; anything else bubbles up as an internal error.
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("valid quantity is required")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrOrderNotCancellable = errors.New("cannot cancel this order")
	ErrReviewNotEligible   = errors.New("order not found or not delivered")
	ErrItemAlreadyReviewed = errors.New("item already reviewed")
	ErrAlreadyReviewed     = errors.New("you have already reviewed this product")
	ErrReviewForbidden     = errors.New("you do not have permission to modify this review")
	ErrCategoryInUse       = errors.New("cannot delete category with products")
)
