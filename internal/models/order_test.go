package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	cases := map[string]bool{
		OrderStatusPending:    true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    true,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  false,
	}

	for status, want := range cases {
		order := Order{Status: status}
		assert.Equal(t, want, order.CanCancel(), "status %s", status)
	}
}

func TestValidStatuses(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus("lost"))
	assert.False(t, ValidOrderStatus(""))

	for _, status := range PaymentStatuses {
		assert.True(t, ValidPaymentStatus(status))
	}
	assert.False(t, ValidPaymentStatus("store-credit"))
}
