package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stylehub/internal/database"
	"github.com/example/stylehub/internal/models"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
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

func newCatalogApp(db *gorm.DB) *fiber.App {
	h := NewProductHandler(db)
	app := fiber.New()
	app.Get("/api/products", h.ListProducts)
	app.Get("/api/products/featured", h.FeaturedProducts)
	app.Get("/api/products/categories", h.ListCategories)
	app.Get("/api/products/category/:slug", h.ProductsByCategory)
	app.Get("/api/products/:id", h.GetProduct)
	return app
}

type listingResponse struct {
	Success    bool             `json:"success"`
	Data       []models.Product `json:"data"`
	Pagination struct {
		CurrentPage  int   `json:"current_page"`
		ItemsPerPage int   `json:"items_per_page"`
		TotalItems   int64 `json:"total_items"`
		TotalPages   int64 `json:"total_pages"`
	} `json:"pagination"`
}

func getListing(t *testing.T, app *fiber.App, path string) listingResponse {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body listingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	return body
}

func seedCatalog(t *testing.T, db *gorm.DB) (shirts, shoes models.Category) {
	t.Helper()

	shirts = models.Category{Name: "Shirts", Slug: "shirts"}
	shoes = models.Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, db.Create(&shirts).Error)
	require.NoError(t, db.Create(&shoes).Error)

	products := []models.Product{
		{Name: "Denim Shirt", Slug: "denim-shirt", Price: 49.90, CategoryID: &shirts.ID, IsActive: true},
		{Name: "Denim Shirt Slim", Slug: "denim-shirt-slim", Price: 54.90, CategoryID: &shirts.ID, IsActive: true},
		{Name: "Linen Shirt", Slug: "linen-shirt", Price: 39.90, CategoryID: &shirts.ID, IsActive: true},
		{Name: "Denim Sneakers", Slug: "denim-sneakers", Price: 79.90, CategoryID: &shoes.ID, IsActive: true, IsFeatured: true},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	// Soft-deleted denim shirt must stay invisible everywhere public.
	pulled := models.Product{Name: "Denim Shirt Retired", Slug: "denim-shirt-retired", Price: 9.90, CategoryID: &shirts.ID, IsActive: true}
	require.NoError(t, db.Create(&pulled).Error)
	require.NoError(t, db.Model(&pulled).Update("is_active", false).Error)

	return shirts, shoes
}

// The count for the pagination block runs on the same filtered query as the
// page itself, so total_items always matches the filter predicate.
func TestListProductsCountMirrorsFilter(t *testing.T) {
	db := newHandlerTestDB(t)
	seedCatalog(t, db)
	app := newCatalogApp(db)

	// search + category filter: two active denim shirts, paged one per page.
	body := getListing(t, app, "/api/products?search=denim&category=shirts&limit=1")
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(2), body.Pagination.TotalItems)
	assert.Equal(t, int64(2), body.Pagination.TotalPages)

	// search alone spans categories; the retired shirt stays excluded.
	body = getListing(t, app, "/api/products?search=denim")
	assert.Equal(t, int64(3), body.Pagination.TotalItems)

	// search is case-insensitive.
	body = getListing(t, app, "/api/products?search=DENIM&category=shirts")
	assert.Equal(t, int64(2), body.Pagination.TotalItems)

	// no filters: every active product.
	body = getListing(t, app, "/api/products")
	assert.Equal(t, int64(4), body.Pagination.TotalItems)
}

func TestListProductsByCategorySlug(t *testing.T) {
	db := newHandlerTestDB(t)
	seedCatalog(t, db)
	app := newCatalogApp(db)

	body := getListing(t, app, "/api/products/category/shirts")
	assert.Equal(t, int64(3), body.Pagination.TotalItems)
	for _, p := range body.Data {
		require.NotNil(t, p.Category)
		assert.Equal(t, "shirts", p.Category.Slug)
	}

	body = getListing(t, app, "/api/products/category/no-such-category")
	assert.Empty(t, body.Data)
	assert.Equal(t, int64(0), body.Pagination.TotalItems)
}

func TestFeaturedProducts(t *testing.T) {
	db := newHandlerTestDB(t)
	seedCatalog(t, db)
	app := newCatalogApp(db)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/featured", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "denim-sneakers", body.Data[0].Slug)
}

func TestGetProductHidesInactive(t *testing.T) {
	db := newHandlerTestDB(t)
	seedCatalog(t, db)
	app := newCatalogApp(db)

	var retired models.Product
	require.NoError(t, db.First(&retired, "slug = ?", "denim-shirt-retired").Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/"+retired.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var active models.Product
	require.NoError(t, db.First(&active, "slug = ?", "denim-shirt").Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/products/"+active.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
