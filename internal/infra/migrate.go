package infra

import (
	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
)

// AutoMigrate declares the five tables: users, amenities, places, reviews
// and the place_amenity join table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Amenity{},
		&db_models.Place{},
		&db_models.Review{},
	)
}
