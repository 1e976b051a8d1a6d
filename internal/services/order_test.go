package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
)

func checkoutInput() CreateOrderInput {
	return CreateOrderInput{
		OrderNumber:   "ORD-TEST-1",
		Subtotal:      109.80,
		ShippingCost:  9.99,
		Total:         119.79,
		PaymentMethod: "card",
		Shipping: ShippingDetails{
			Name:       "Jamie Doe",
			Phone:      "+1555000111",
			Address:    "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
		},
	}
}

func TestCreateOrderSnapshotsCartAndDrains(t *testing.T) {
	db := newTestDB(t)
	cart := NewCartService(db)
	orders := NewOrderService(db, cart)
	user := createUser(t, db, "order-create@example.com")
	jacket := createProduct(t, db, "Denim Jacket", 89.90)
	tee := createProduct(t, db, "Plain Tee", 19.90)

	require.NoError(t, cart.Add(user.ID, jacket.ID, 1))
	require.NoError(t, cart.Add(user.ID, tee.ID, 2))

	order, err := orders.Create(user.ID, checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, "ORD-TEST-1", order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)

	// Totals are stored as submitted, not recomputed.
	assert.Equal(t, 109.80, order.Subtotal)
	assert.Equal(t, 9.99, order.ShippingCost)
	assert.Equal(t, 119.79, order.Total)
	assert.Equal(t, "Jamie Doe", order.ShippingName)

	require.Len(t, order.Items, 2)
	byName := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byName[item.ProductName] = item
	}
	assert.Equal(t, 89.90, byName["Denim Jacket"].ProductPrice)
	assert.Equal(t, 1, byName["Denim Jacket"].Quantity)
	assert.Equal(t, 89.90, byName["Denim Jacket"].Subtotal)
	assert.Equal(t, 19.90, byName["Plain Tee"].ProductPrice)
	assert.Equal(t, 2, byName["Plain Tee"].Quantity)
	assert.InDelta(t, 39.80, byName["Plain Tee"].Subtotal, 0.0001)

	lines, err := cart.Items(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines, "cart must be drained by checkout")
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	cart := NewCartService(db)
	orders := NewOrderService(db, cart)
	user := createUser(t, db, "order-empty@example.com")

	_, err := orders.Create(user.ID, checkoutInput())
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderGeneratesOrderNumber(t *testing.T) {
	db := newTestDB(t)
	cart := NewCartService(db)
	orders := NewOrderService(db, cart)
	user := createUser(t, db, "order-number@example.com")
	product := createProduct(t, db, "Wool Scarf", 29.00)

	require.NoError(t, cart.Add(user.ID, product.ID, 1))

	in := checkoutInput()
	in.OrderNumber = ""
	order, err := orders.Create(user.ID, in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"), "got %q", order.OrderNumber)
}

func TestOrderSnapshotImmuneToProductChanges(t *testing.T) {
	db := newTestDB(t)
	cart := NewCartService(db)
	orders := NewOrderService(db, cart)
	user := createUser(t, db, "order-snapshot@example.com")
	product := createProduct(t, db, "Leather Belt", 24.50)

	require.NoError(t, cart.Add(user.ID, product.ID, 1))
	order, err := orders.Create(user.ID, checkoutInput())
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":  "Renamed Belt",
		"price": 99.99,
	}).Error)

	reloaded, err := orders.Find(order.ID, &user.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Leather Belt", reloaded.Items[0].ProductName)
	assert.Equal(t, 24.50, reloaded.Items[0].ProductPrice)
}

func TestFindScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, NewCartService(db))
	owner := createUser(t, db, "order-owner@example.com")
	other := createUser(t, db, "order-other@example.com")
	product := createProduct(t, db, "Canvas Tote", 15.00)
	order := createOrderWithItem(t, db, owner.ID, product.ID, models.OrderStatusPending)

	found, err := orders.Find(order.ID, &owner.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = orders.Find(order.ID, &other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// nil scope reads any order, which is how admins look orders up.
	found, err = orders.Find(order.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestCancelOrder(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, NewCartService(db))
	user := createUser(t, db, "order-cancel@example.com")
	other := createUser(t, db, "order-cancel-other@example.com")
	product := createProduct(t, db, "Plain Tee", 19.90)

	cases := []struct {
		status  string
		wantErr error
	}{
		{models.OrderStatusPending, nil},
		{models.OrderStatusProcessing, nil},
		{models.OrderStatusShipped, nil},
		{models.OrderStatusDelivered, ErrOrderNotCancellable},
		{models.OrderStatusCancelled, ErrOrderNotCancellable},
	}

	for _, tc := range cases {
		order := createOrderWithItem(t, db, user.ID, product.ID, tc.status)
		err := orders.Cancel(user.ID, order.ID)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "status %s", tc.status)
			continue
		}
		require.NoError(t, err, "status %s", tc.status)

		var reloaded models.Order
		require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
		assert.Equal(t, models.OrderStatusCancelled, reloaded.Status)
		assert.NotNil(t, reloaded.CancelledAt)
	}

	// Someone else's order reads as not found, never as a state error.
	order := createOrderWithItem(t, db, user.ID, product.ID, models.OrderStatusPending)
	assert.ErrorIs(t, orders.Cancel(other.ID, order.ID), gorm.ErrRecordNotFound)
}

func TestUpdateStatusStampsTimestamps(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, NewCartService(db))
	user := createUser(t, db, "order-status@example.com")
	product := createProduct(t, db, "Wool Scarf", 29.00)
	order := createOrderWithItem(t, db, user.ID, product.ID, models.OrderStatusPending)

	require.NoError(t, orders.UpdateStatus(order.ID, models.OrderStatusShipped))
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, reloaded.Status)
	assert.NotNil(t, reloaded.ShippedAt)
	assert.Nil(t, reloaded.DeliveredAt)

	require.NoError(t, orders.UpdateStatus(order.ID, models.OrderStatusDelivered))
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)
	assert.NotNil(t, reloaded.DeliveredAt)

	assert.Error(t, orders.UpdateStatus(order.ID, "lost-in-transit"))
	assert.ErrorIs(t, orders.UpdateStatus(uuid.New(), models.OrderStatusShipped), gorm.ErrRecordNotFound)
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, NewCartService(db))
	user := createUser(t, db, "order-payment@example.com")
	product := createProduct(t, db, "Canvas Tote", 15.00)
	order := createOrderWithItem(t, db, user.ID, product.ID, models.OrderStatusPending)

	require.NoError(t, orders.UpdatePaymentStatus(order.ID, models.PaymentStatusPaid))
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, reloaded.PaymentStatus)
	assert.NotNil(t, reloaded.PaidAt)

	// Refunding keeps the original paid_at stamp.
	require.NoError(t, orders.UpdatePaymentStatus(order.ID, models.PaymentStatusRefunded))
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusRefunded, reloaded.PaymentStatus)
	assert.NotNil(t, reloaded.PaidAt)

	assert.Error(t, orders.UpdatePaymentStatus(order.ID, "store-credit"))
	assert.ErrorIs(t, orders.UpdatePaymentStatus(uuid.New(), models.PaymentStatusPaid), gorm.ErrRecordNotFound)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db, NewCartService(db))
	user := createUser(t, db, "order-stats@example.com")
	other := createUser(t, db, "order-stats-other@example.com")
	product := createProduct(t, db, "Plain Tee", 19.90)

	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		createOrderWithItem(t, db, user.ID, product.ID, status)
	}
	createOrderWithItem(t, db, other.ID, product.ID, models.OrderStatusPending)

	stats, err := orders.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.ProcessingOrders)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.Equal(t, int64(1), stats.CancelledOrders)
	assert.InDelta(t, 250.0, stats.TotalSpent, 0.0001)
}
