package controllers

import (
	"errors"
	"log"

	"quizapp/backend/apperr"
	"quizapp/backend/config"
	"quizapp/backend/models"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuestionController struct {
	Questions *services.QuestionService
	Cfg       *config.Config
	Logger    *log.Logger
}

func NewQuestionController(questions *services.QuestionService, cfg *config.Config, logger *log.Logger) *QuestionController {
	return &QuestionController{Questions: questions, Cfg: cfg, Logger: logger}
}

// Generate godoc
// @Summary Generate multiple-choice questions for a topic list
// @Tags questions
// @Router /questions/generate [post]
func (qc *QuestionController) Generate(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	questions, err := qc.Questions.Generate(c.Context(), req)
	if err != nil {
		var malformed *apperr.MalformedOutputError
		var unavailable *apperr.GenerationError
		switch {
		case errors.As(err, &malformed):
			// keep the raw reply in the server log for diagnosis, but
			// never echo it to the client
			qc.Logger.Printf("generator reply rejected: %v; raw: %q", malformed.Err, malformed.Raw)
			return utils.BadGateway(c, "Generator returned unusable output")
		case errors.As(err, &unavailable):
			qc.Logger.Printf("generator unreachable: %v", err)
			return utils.BadGateway(c, "Failed to generate questions")
		default:
			return utils.InternalServerError(c, "Failed to generate questions")
		}
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"questions": questions,
	})
}
