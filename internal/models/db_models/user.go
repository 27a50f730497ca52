package db_models

type User struct {
	BaseModel
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Email     string `gorm:"size:120;not null;uniqueIndex"`
	Password  string `gorm:"size:128;not null"` // bcrypt digest, never plaintext
	IsAdmin   bool   `gorm:"not null;default:false"`

	Places  []Place  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
