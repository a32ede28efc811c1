package services

import (
	"errors"
	"fmt"
	"time"

	"quizapp/backend/apperr"
	"quizapp/backend/models"

	"gorm.io/gorm"
)

type AuthService struct {
	DB       *gorm.DB
	Verifier Verifier
}

func NewAuthService(db *gorm.DB, verifier Verifier) *AuthService {
	return &AuthService{DB: db, Verifier: verifier}
}

// Register creates a new user if the email is unused and returns it.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperr.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage("find user by email", err)
	}

	hash, err := s.Verifier.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, apperr.Storage("create user", err)
	}

	return &user, nil
}

// Login checks an email/password pair. The password and stored hash are
// never logged or returned.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, apperr.Storage("find user by email", err)
	}

	if !s.Verifier.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	s.DB.Create(&models.LoginHistory{
		UserID:    user.ID,
		LoginTime: time.Now(),
	})

	return &user, nil
}
