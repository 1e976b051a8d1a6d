package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecordAndFetch(t *testing.T) {
	db := newTestDB(t)
	activity := NewActivityService(db)
	user := createUser(t, db, "activity@example.com")
	other := createUser(t, db, "activity-other@example.com")

	activity.Record(user.ID, "login", "User logged in", "127.0.0.1", "go-test")
	activity.Record(user.ID, "create_order", "Order ORD-1 created", "127.0.0.1", "go-test")
	activity.Record(other.ID, "login", "User logged in", "127.0.0.1", "go-test")

	logs, err := activity.ForUser(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// Most recent first.
	assert.Equal(t, "create_order", logs[0].Action)
	assert.Equal(t, "login", logs[1].Action)

	all, err := activity.All(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := activity.All(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
