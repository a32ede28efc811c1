package controllers

import (
	"errors"
	"time"

	"quizapp/backend/apperr"
	"quizapp/backend/config"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StreakController struct {
	Streaks *services.StreakService
	Cfg     *config.Config
}

func NewStreakController(streaks *services.StreakService, cfg *config.Config) *StreakController {
	return &StreakController{Streaks: streaks, Cfg: cfg}
}

type UpdateStreakInput struct {
	UserID string `json:"userId"`
}

// UpdateStreak godoc
// @Summary Record a completed quiz for today
// @Tags streak
// @Router /streak/update [post]
func (sc *StreakController) UpdateStreak(c *fiber.Ctx) error {
	var input UpdateStreakInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	streak, err := sc.Streaks.Update(input.UserID, time.Now())
	if err != nil {
		var vErr *apperr.ValidationError
		if errors.As(err, &vErr) {
			return utils.BadRequest(c, vErr.Msg)
		}
		return utils.InternalServerError(c, "Streak update failed")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"currentStreak": streak.CurrentStreak,
		"bestStreak":    streak.BestStreak,
	})
}

// GetStreak godoc
// @Summary Read current and best streak for a user
// @Tags streak
// @Router /streak [get]
func (sc *StreakController) GetStreak(c *fiber.Ctx) error {
	userID := c.Query("userId")

	current, best, err := sc.Streaks.Get(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load streak")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"currentStreak": current,
		"bestStreak":    best,
	})
}
