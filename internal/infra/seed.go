package infra

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hbnb/internal/config"
	"hbnb/internal/models/db_models"
	"hbnb/pkg/utils"
)

// Fixed ids so repeated runs against different databases produce the same
// logical records.
var (
	AdminUserID = uuid.MustParse("36c9050e-ddd3-4c3b-9731-9f487208bbc1")

	WifiAmenityID            = uuid.MustParse("f0c7dc05-30c4-4b38-8e3e-0a63cbcb2d23")
	SwimmingPoolAmenityID    = uuid.MustParse("7a44a776-f11f-41b9-8c67-4f59f4c2c4ce")
	AirConditioningAmenityID = uuid.MustParse("9d8f1c20-27e7-4a29-b6d9-a2a0f27c8f41")
)

var seedAmenities = []db_models.Amenity{
	{BaseModel: db_models.BaseModel{ID: WifiAmenityID}, Name: "WiFi"},
	{BaseModel: db_models.BaseModel{ID: SwimmingPoolAmenityID}, Name: "Swimming Pool"},
	{BaseModel: db_models.BaseModel{ID: AirConditioningAmenityID}, Name: "Air Conditioning"},
}

// Seed inserts the administrator account and the initial amenities.
// Running it again is a no-op.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return seedInitialAmenities(db)
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&db_models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("admin already exists: %s", cfg.AdminEmail)
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := db_models.User{
		BaseModel: db_models.BaseModel{ID: AdminUserID},
		FirstName: "Admin",
		LastName:  "HBnB",
		Email:     cfg.AdminEmail,
		Password:  hash,
		IsAdmin:   true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin user %s", cfg.AdminEmail)
	return nil
}

func seedInitialAmenities(db *gorm.DB) error {
	for _, amenity := range seedAmenities {
		var count int64
		if err := db.Model(&db_models.Amenity{}).Where("name = ?", amenity.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&amenity).Error; err != nil {
			return err
		}
		log.Printf("seeded amenity %q", amenity.Name)
	}
	return nil
}
