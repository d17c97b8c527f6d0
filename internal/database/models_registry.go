package database

import "glimpse/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Story{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
	}
}
