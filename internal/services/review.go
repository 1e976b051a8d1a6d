package services

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
)

// ReviewService implements the two review entry points and keeps the
// denormalized product rating aggregates in sync.
//
// The purchased-item path gates on delivery and the order item's is_reviewed
// flag; the direct path gates on one review per (user, product). The two
// policies are deliberate and must not be merged.
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService constructs ReviewService.
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CanReview checks purchased-item eligibility: the order belongs to the user,
// is delivered, contains an item for the product, and that item has not been
// reviewed yet. Returns the matching order item ID when eligible.
func (s *ReviewService) CanReview(userID, orderID, productID uuid.UUID) (uuid.UUID, error) {
	return s.canReviewTx(s.db, userID, orderID, productID)
}

type eligibilityRow struct {
	OrderItemID uuid.UUID
	IsReviewed  bool
}

func (s *ReviewService) canReviewTx(tx *gorm.DB, userID, orderID, productID uuid.UUID) (uuid.UUID, error) {
	var row eligibilityRow
	res := tx.Table("orders").
		Select("order_items.id AS order_item_id, order_items.is_reviewed").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.id = ? AND orders.user_id = ? AND order_items.product_id = ? AND orders.status = ?",
			orderID, userID, productID, models.OrderStatusDelivered).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, ErrReviewNotEligible
	}
	if row.IsReviewed {
		return uuid.Nil, ErrItemAlreadyReviewed
	}
	return row.OrderItemID, nil
}

// PurchaseReviewInput is the payload for the order-scoped review path.
type PurchaseReviewInput struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewPurchasedItem creates a verified-purchase review for a delivered
// order item, marks the item reviewed, and refreshes the product aggregates.
// The eligibility re-check, the insert, the item flag, and the aggregate
// update share one transaction.
func (s *ReviewService) ReviewPurchasedItem(userID uuid.UUID, in PurchaseReviewInput) (*models.Review, error) {
	var review models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderItemID, err := s.canReviewTx(tx, userID, in.OrderID, in.ProductID)
		if err != nil {
			return err
		}

		orderID := in.OrderID
		review = models.Review{
			ProductID:          in.ProductID,
			UserID:             userID,
			OrderID:            &orderID,
			Rating:             in.Rating,
			Comment:            in.Comment,
			IsVerifiedPurchase: true,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("id = ?", orderItemID).
			Updates(map[string]interface{}{
				"is_reviewed": true,
				"review_id":   review.ID,
			}).Error; err != nil {
			return err
		}

		return s.refreshProductRating(tx, in.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewProductDirect creates a plain product review. At most one review per
// (user, product) exists on this path; no order linkage is recorded.
func (s *ReviewService) ReviewProductDirect(userID, productID uuid.UUID, rating int, comment string) (*models.Review, error) {
	var review models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ? AND is_active = ?", productID, true).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("product_id = ? AND user_id = ?", productID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		review = models.Review{
			ProductID: productID,
			UserID:    userID,
			Rating:    rating,
			Comment:   comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return s.refreshProductRating(tx, productID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update edits a review owned by the caller and refreshes the aggregates.
func (s *ReviewService) Update(userID, reviewID uuid.UUID, rating int, comment string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ? AND user_id = ?", reviewID, userID).Error; err != nil {
			return err
		}

		if err := tx.Model(&review).Updates(map[string]interface{}{
			"rating":  rating,
			"comment": comment,
		}).Error; err != nil {
			return err
		}

		return s.refreshProductRating(tx, review.ProductID)
	})
}

// Delete removes a review (owner or admin), clears the reviewed flag on any
// order item linked to it, and refreshes the aggregates.
func (s *ReviewService) Delete(userID uuid.UUID, isAdmin bool, reviewID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return err
		}

		if review.UserID != userID && !isAdmin {
			return ErrReviewForbidden
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("review_id = ?", review.ID).
			Updates(map[string]interface{}{
				"is_reviewed": false,
				"review_id":   nil,
			}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Review{}, "id = ?", review.ID).Error; err != nil {
			return err
		}

		return s.refreshProductRating(tx, review.ProductID)
	})
}

type ratingStats struct {
	AvgRating    float64
	ReviewsCount int64
}

// refreshProductRating recomputes rating (one decimal place, 0 with no
// reviews) and reviews_count from the reviews table and persists both.
func (s *ReviewService) refreshProductRating(tx *gorm.DB, productID uuid.UUID) error {
	var stats ratingStats
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS reviews_count").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return err
	}

	rating := math.Round(stats.AvgRating*10) / 10

	return tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"rating":        rating,
		"reviews_count": stats.ReviewsCount,
	}).Error
}
