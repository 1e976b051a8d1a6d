package models

import "github.com/google/uuid"

// Review is a product rating left by a user. OrderID is set only for
// reviews created through the purchased-item path; those are flagged as
// verified purchases.
type Review struct {
	BaseModel
	ProductID          uuid.UUID  `gorm:"type:uuid;index" json:"product_id"`
	UserID             uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User               *User      `json:"user,omitempty"`
	OrderID            *uuid.UUID `gorm:"type:uuid" json:"order_id"`
	Rating             int        `json:"rating"`
	Comment            string     `json:"comment"`
	IsVerifiedPurchase bool       `json:"is_verified_purchase"`
}
