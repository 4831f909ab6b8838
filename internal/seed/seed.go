// Package seed populates a development database with realistic content.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// EnsureUser creates a user with the given email unless one already
// exists, and returns it either way.
func EnsureUser(db *gorm.DB, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Name: name, Password: hashed}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	observability.Logger.Info("seeded user", "email", email)
	return user, nil
}

// EnsureAdmin guarantees that the administrator account exists under the
// configured id. If the slot is already taken by some other account the
// database is considered misconfigured and an error is returned.
func EnsureAdmin(db *gorm.DB, adminID uint, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := db.First(&existing, adminID).Error
	if err == nil {
		if existing.Email != email {
			return nil, fmt.Errorf("user id %d already exists with email %q", adminID, existing.Email)
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.User{ID: adminID, Email: email, Name: name, Password: hashed}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}

	// Inserting with an explicit id leaves the serial sequence behind on
	// Postgres, which would hand the same id to the next registration.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))").Error; err != nil {
			return nil, err
		}
	}

	observability.Logger.Info("seeded administrator", "id", adminID, "email", email)
	return admin, nil
}

// EnsurePost creates a post with the given title unless one already
// exists, keyed by title so reseeding is idempotent.
func EnsurePost(db *gorm.DB, post *models.Post) (*models.Post, error) {
	var existing models.Post
	err := db.Where("title = ?", post.Title).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Omit("Author").Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post %q: %w", post.Title, err)
	}
	observability.Logger.Info("seeded post", "title", post.Title)
	return post, nil
}
