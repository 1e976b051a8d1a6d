package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/stylehub/internal/config"
	"github.com/example/stylehub/internal/database"
	"github.com/example/stylehub/internal/handlers"
	"github.com/example/stylehub/internal/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		// The process stays up so /health keeps answering while the
		// database is down.
		log.Printf("database unavailable, starting without API routes: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "StyleHub Backend",
		ErrorHandler: handlers.NewErrorHandler(cfg),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if db == nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{"status": status})
	})

	if db != nil {
		routes.Register(app, db, cfg)
	}

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
