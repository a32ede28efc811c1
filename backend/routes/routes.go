package routes

import (
	"log"

	"quizapp/backend/config"
	"quizapp/backend/controllers"
	"quizapp/backend/middleware"
	"quizapp/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Deps struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Logger    *log.Logger
	Completer services.Completer
}

func SetupRoutes(app *fiber.App, deps Deps) {
	authService := services.NewAuthService(deps.DB, services.NewBcryptVerifier())
	streakService := services.NewStreakService(deps.DB)
	questionService := services.NewQuestionService(deps.Completer)

	// Health route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "msg": "Quiz backend running"})
	})

	// Auth routes
	authController := controllers.NewAuthController(authService, deps.Cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(deps.Cfg)

	// User routes
	userController := controllers.NewUserController(deps.DB, streakService, deps.Cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Streak routes
	streakController := controllers.NewStreakController(streakService, deps.Cfg)
	app.Post("/api/streak/update", authMiddleware, streakController.UpdateStreak)
	app.Get("/api/streak", authMiddleware, streakController.GetStreak)

	// Question generation routes
	questionController := controllers.NewQuestionController(questionService, deps.Cfg, deps.Logger)
	app.Post("/api/questions/generate", authMiddleware, questionController.Generate)
}
