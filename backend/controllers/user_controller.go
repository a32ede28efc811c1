package controllers

import (
	"errors"

	"quizapp/backend/config"
	"quizapp/backend/models"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	Streaks *services.StreakService
	Cfg     *config.Config
}

func NewUserController(db *gorm.DB, streaks *services.StreakService, cfg *config.Config) *UserController {
	return &UserController{DB: db, Streaks: streaks, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile with streak summary
// @Tags users
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	current, best, err := uc.Streaks.Get(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load streak")
	}

	// Формируем ответ без чувствительных данных
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"created_at":    user.CreatedAt,
		"currentStreak": current,
		"bestStreak":    best,
	})
}
