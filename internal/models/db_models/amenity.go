package db_models

type Amenity struct {
	BaseModel
	Name        string `gorm:"size:50;not null;uniqueIndex"`
	Description string `gorm:"size:255"`

	Places []Place `gorm:"many2many:place_amenity;constraint:OnDelete:CASCADE"`
}
