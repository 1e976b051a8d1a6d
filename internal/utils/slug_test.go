package utils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stylehub/internal/database"
	"github.com/example/stylehub/internal/models"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Red Shirt", "red-shirt"},
		{"  Red   Shirt  ", "red-shirt"},
		{"Men's Outerwear", "men-s-outerwear"},
		{"100% Cotton Tee!", "100-cotton-tee"},
		{"---", ""},
		{"ALLCAPS", "allcaps"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestUniqueProductSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	slug, err := UniqueProductSlug(db, "Red Shirt")
	require.NoError(t, err)
	assert.Equal(t, "red-shirt", slug)

	require.NoError(t, db.Create(&models.Product{Name: "Red Shirt", Slug: "red-shirt", Price: 10}).Error)

	slug, err = UniqueProductSlug(db, "Red Shirt")
	require.NoError(t, err)
	assert.Equal(t, "red-shirt-1", slug)

	require.NoError(t, db.Create(&models.Product{Name: "Red Shirt", Slug: "red-shirt-1", Price: 10}).Error)

	slug, err = UniqueProductSlug(db, "Red Shirt")
	require.NoError(t, err)
	assert.Equal(t, "red-shirt-2", slug)
}
