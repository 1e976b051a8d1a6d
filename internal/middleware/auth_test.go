package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stylehub/internal/config"
	"github.com/example/stylehub/internal/database"
	"github.com/example/stylehub/internal/models"
	"github.com/example/stylehub/internal/utils"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour}

	app := fiber.New()
	app.Get("/me", Protect(db, cfg), func(c *fiber.Ctx) error {
		user, _ := CurrentUser(c)
		return c.JSON(fiber.Map{"email": user.Email})
	})
	app.Get("/admin", Protect(db, cfg), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, db, cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string, active bool) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Auth Test",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	if !active {
		require.NoError(t, db.Model(user).Update("is_active", false).Error)
	}
	return user
}

func tokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, user.Role, cfg.TokenExpires)
	require.NoError(t, err)
	return token
}

func TestProtectRejectsMissingOrBadToken(t *testing.T) {
	app, _, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectAllowsValidToken(t *testing.T) {
	app, db, cfg := setupAuthTest(t)
	user := createTestUser(t, db, "valid@example.com", models.RoleUser, true)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectRejectsDeletedUser(t *testing.T) {
	app, db, cfg := setupAuthTest(t)
	user := createTestUser(t, db, "deleted@example.com", models.RoleUser, true)
	token := tokenFor(t, cfg, user)
	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectRejectsInactiveUser(t *testing.T) {
	app, db, cfg := setupAuthTest(t)
	user := createTestUser(t, db, "inactive@example.com", models.RoleUser, false)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app, db, cfg := setupAuthTest(t)
	user := createTestUser(t, db, "plain@example.com", models.RoleUser, true)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin, true)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, admin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
