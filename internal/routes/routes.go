package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/config"
	"github.com/example/stylehub/internal/handlers"
	"github.com/example/stylehub/internal/middleware"
	"github.com/example/stylehub/internal/services"
)

// Register wires up all HTTP routes. The catalog under /products is public;
// carts, orders, reviews and wishlists require a token; /admin additionally
// requires the admin role.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db, cartService)
	reviewService := services.NewReviewService(db)
	catalogService := services.NewCatalogService(db)
	activityService := services.NewActivityService(db)

	authHandler := handlers.NewAuthHandler(db, cfg, activityService)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(db, orderService, reviewService, activityService)
	reviewHandler := handlers.NewReviewHandler(reviewService, activityService)
	wishlistHandler := handlers.NewWishlistHandler(db)
	adminHandler := handlers.NewAdminHandler(db, orderService, catalogService, activityService)

	protect := middleware.Protect(db, cfg)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", protect, authHandler.GetProfile)
	auth.Put("/profile", protect, authHandler.UpdateProfile)
	auth.Put("/change-password", protect, authHandler.ChangePassword)
	auth.Post("/logout", protect, authHandler.Logout)
	auth.Get("/activity-logs", protect, authHandler.MyActivityLogs)

	// Catalog. Static segments register before :id so /products/featured
	// never parses as a product id.
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/featured", productHandler.FeaturedProducts)
	products.Get("/categories", productHandler.ListCategories)
	products.Get("/category/:slug", productHandler.ProductsByCategory)
	products.Get("/wishlist/me", protect, wishlistHandler.GetWishlist)
	products.Put("/reviews/:reviewId", protect, reviewHandler.UpdateReview)
	products.Delete("/reviews/:reviewId", protect, reviewHandler.DeleteReview)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/:id/reviews", protect, reviewHandler.CreateReview)
	products.Post("/:id/wishlist", protect, wishlistHandler.AddToWishlist)
	products.Delete("/:id/wishlist", protect, wishlistHandler.RemoveFromWishlist)

	// Orders and the cart that feeds them. /stats, /cart and /reviews
	// register before /:id.
	orders := api.Group("/orders", protect)
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/stats", orderHandler.OrderStats)
	orders.Get("/cart/items", cartHandler.GetCart)
	orders.Post("/cart", cartHandler.AddToCart)
	orders.Put("/cart/:id", cartHandler.UpdateCartItem)
	orders.Delete("/cart/:id", cartHandler.RemoveFromCart)
	orders.Delete("/cart", cartHandler.ClearCart)
	orders.Post("/reviews", orderHandler.CreatePurchaseReview)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Get("/:id/reviews", orderHandler.OrderItemReviews)
	orders.Put("/:id/cancel", orderHandler.CancelOrder)

	// Admin back-office
	admin := api.Group("/admin", protect, middleware.RequireAdmin())

	admin.Get("/dashboard", adminHandler.Dashboard)

	admin.Get("/products", adminHandler.ListProducts)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
	admin.Put("/products/:id/featured", adminHandler.ToggleFeatured)

	admin.Get("/orders", adminHandler.ListOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Put("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.Put("/orders/:id/payment", adminHandler.UpdatePaymentStatus)
	admin.Delete("/orders/:id", adminHandler.DeleteOrder)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Put("/users/:id/status", adminHandler.UpdateUserStatus)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	admin.Get("/categories", adminHandler.ListCategories)
	admin.Post("/categories", adminHandler.CreateCategory)
	admin.Put("/categories/:id", adminHandler.UpdateCategory)
	admin.Delete("/categories/:id", adminHandler.DeleteCategory)

	admin.Get("/activity-logs", adminHandler.ActivityLogs)
}
