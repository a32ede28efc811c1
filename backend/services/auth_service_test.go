package services

import (
	"testing"

	"quizapp/backend/apperr"
	"quizapp/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(memoryDSN(t)), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LoginHistory{}))
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(setupAuthDB(t), NewBcryptVerifier())

	user, err := svc.Register("Test User", "test@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	logged, err := svc.Login("test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Equal(t, "Test User", logged.Name)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewAuthService(setupAuthDB(t), NewBcryptVerifier())

	for _, in := range []struct{ name, email, password string }{
		{"", "a@example.com", "pw"},
		{"A", "", "pw"},
		{"A", "a@example.com", ""},
	} {
		_, err := svc.Register(in.name, in.email, in.password)

		var vErr *apperr.ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(setupAuthDB(t), NewBcryptVerifier())

	_, err := svc.Register("First", "dup@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Second", "dup@example.com", "otherpassword")
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(setupAuthDB(t), NewBcryptVerifier())

	_, err := svc.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestLoginWrongPasswordLeavesUserUnchanged(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewAuthService(db, NewBcryptVerifier())

	user, err := svc.Register("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
	assert.Equal(t, user.Email, stored.Email)
}

func TestLoginRecordsHistory(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewAuthService(db, NewBcryptVerifier())

	_, err := svc.Register("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("test@example.com", "password123")
	require.NoError(t, err)

	var count int64
	db.Model(&models.LoginHistory{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
