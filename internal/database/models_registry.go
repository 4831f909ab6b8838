package database

import "inkwell/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM
// models, ordered so that referenced tables migrate first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
	}
}
