package main

import (
	"log"

	"quizapp/backend/ai"
	"quizapp/backend/config"
	"quizapp/backend/middleware"
	"quizapp/backend/routes"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		DB:        db,
		Cfg:       cfg,
		Logger:    logger,
		Completer: ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel),
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
