package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stylehub/internal/database"
	"github.com/example/stylehub/internal/models"
)

// newTestDB opens an in-memory sqlite database with the full schema. A single
// connection keeps the in-memory database alive across the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         models.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     name,
		Slug:     uuid.NewString(),
		Price:    price,
		Stock:    10,
		IsActive: true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func deactivateProduct(t *testing.T, db *gorm.DB, id uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false).Error)
}

// createOrderWithItem inserts an order in the given status with one item for
// the product, bypassing the cart.
func createOrderWithItem(t *testing.T, db *gorm.DB, userID, productID uuid.UUID, status string) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID:        userID,
		OrderNumber:   uuid.NewString(),
		Status:        status,
		PaymentStatus: models.PaymentStatusUnpaid,
		Subtotal:      50,
		Total:         50,
		PaymentMethod: "cod",
		Items: []models.OrderItem{
			{
				ProductID:    &productID,
				ProductName:  "snapshot",
				ProductPrice: 50,
				Quantity:     1,
				Subtotal:     50,
			},
		},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
