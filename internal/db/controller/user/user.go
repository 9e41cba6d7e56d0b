// Package user manages dashboard accounts.
package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

var (
	// ErrUserNotFound is returned when no user matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when the username is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameEmpty is returned when a username is required but empty.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrPasswordEmpty is returned when a password is required but empty.
	ErrPasswordEmpty = errors.New("password cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a user by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("get user %d: %w", id, result.Error)
	}

	return &u, nil
}

// GetByUsername retrieves a user by username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if username == "" {
		return nil, ErrUsernameEmpty
	}

	var u models.User

	result := db.Where("username = ?", username).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("get user %q: %w", username, result.Error)
	}

	return &u, nil
}

// Create stores a new user with a hashed password.
func Create(db *gorm.DB, username, password string, isAdmin bool) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if username == "" {
		return nil, ErrUsernameEmpty
	}

	if password == "" {
		return nil, ErrPasswordEmpty
	}

	_, err := GetByUsername(db, username)
	if err == nil {
		return nil, ErrUserExists
	}

	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username: username,
		Password: hash,
		IsAdmin:  isAdmin,
	}

	if err = db.Create(u).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}

	return u, nil
}

// Authenticate returns the user if the password matches. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	u, err := GetByUsername(db, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUsernameEmpty) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// SetPassword replaces the password of username.
func SetPassword(db *gorm.DB, username, password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	u, err := GetByUsername(db, username)
	if err != nil {
		return err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = db.Model(u).Update("password", hash).Error; err != nil {
		return fmt.Errorf("update password of %q: %w", username, err)
	}

	return nil
}

// EnsureAdmin creates the admin account unless an admin already exists.
// An existing non admin user with the same name is promoted instead, its password is kept.
// It reports whether anything changed.
func EnsureAdmin(db *gorm.DB, username, password string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var admins int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}

	if admins > 0 {
		return false, nil
	}

	u, err := GetByUsername(db, username)

	switch {
	case err == nil:
		if err = db.Model(u).Update("is_admin", true).Error; err != nil {
			return false, fmt.Errorf("promote %q: %w", username, err)
		}

		return true, nil
	case errors.Is(err, ErrUserNotFound):
		if _, err = Create(db, username, password, true); err != nil {
			return false, err
		}

		return true, nil
	default:
		return false, err
	}
}
