package db_models

import "github.com/google/uuid"

type Place struct {
	BaseModel
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Latitude    float64   `gorm:"type:float"`
	Longitude   float64   `gorm:"type:float"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`

	Reviews   []Review  `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	Amenities []Amenity `gorm:"many2many:place_amenity;constraint:OnDelete:CASCADE"`
}
