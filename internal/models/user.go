// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Inkwell application.
// Users are created by registration and never deleted; there is no
// profile-edit path.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
