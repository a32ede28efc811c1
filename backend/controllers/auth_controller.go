package controllers

import (
	"errors"

	"quizapp/backend/apperr"
	"quizapp/backend/config"
	"quizapp/backend/services"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Auth.Register(input.Name, input.Email, input.Password)
	if err != nil {
		var vErr *apperr.ValidationError
		switch {
		case errors.As(err, &vErr):
			return utils.BadRequest(c, vErr.Msg)
		case errors.Is(err, apperr.ErrEmailTaken):
			return utils.Conflict(c, "Email already registered")
		default:
			return utils.InternalServerError(c, "Could not create user")
		}
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Login godoc
// @Summary Authenticate a user and return a JWT token
// @Tags auth
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Auth.Login(input.Email, input.Password)
	if err != nil {
		var vErr *apperr.ValidationError
		switch {
		case errors.As(err, &vErr):
			return utils.BadRequest(c, vErr.Msg)
		// an unknown email and a wrong password answer the same so the
		// response does not leak which emails are registered
		case errors.Is(err, apperr.ErrUserNotFound),
			errors.Is(err, apperr.ErrInvalidCredentials):
			return utils.Unauthorized(c, "Invalid credentials")
		default:
			return utils.InternalServerError(c, "Could not query database")
		}
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
