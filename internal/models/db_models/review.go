package db_models

import "github.com/google/uuid"

// One review per user per place, enforced by idx_reviews_user_place.
type Review struct {
	BaseModel
	Text    string    `gorm:"type:text;not null"`
	Rating  int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_place"`
	PlaceID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_place"`
}
