package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
)

type AmenityRepositoryInterface interface {
	Insert(ctx context.Context, amenity *db_models.Amenity) error
	FindByID(ctx context.Context, id string) (*db_models.Amenity, error)
	FindByName(ctx context.Context, name string) (*db_models.Amenity, error)
	FindAll(ctx context.Context) ([]db_models.Amenity, error)
	Update(ctx context.Context, amenity *db_models.Amenity) error
	Delete(ctx context.Context, id string) error
}

func NewAmenityRepository(db *gorm.DB) AmenityRepositoryInterface {
	return &AmenityRepository{db: db}
}

type AmenityRepository struct {
	db *gorm.DB
}

func (a *AmenityRepository) Insert(ctx context.Context, amenity *db_models.Amenity) error {
	return a.db.WithContext(ctx).Create(amenity).Error
}

func (a *AmenityRepository) FindByID(ctx context.Context, id string) (*db_models.Amenity, error) {
	var amenity db_models.Amenity
	err := a.db.WithContext(ctx).First(&amenity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &amenity, nil
}

func (a *AmenityRepository) FindByName(ctx context.Context, name string) (*db_models.Amenity, error) {
	var amenity db_models.Amenity
	err := a.db.WithContext(ctx).First(&amenity, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &amenity, nil
}

func (a *AmenityRepository) FindAll(ctx context.Context) ([]db_models.Amenity, error) {
	var amenities []db_models.Amenity
	err := a.db.WithContext(ctx).Order("name").Find(&amenities).Error
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

func (a *AmenityRepository) Update(ctx context.Context, amenity *db_models.Amenity) error {
	return a.db.WithContext(ctx).Save(amenity).Error
}

func (a *AmenityRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Delete(&db_models.Amenity{}, "id = ?", id).Error
}
