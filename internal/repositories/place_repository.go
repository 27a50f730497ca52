package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
)

type PlaceRepository interface {
	Insert(ctx context.Context, place *db_models.Place) error
	FindByID(ctx context.Context, id string) (*db_models.Place, error)
	FindAll(ctx context.Context) ([]db_models.Place, error)
	FindByOwner(ctx context.Context, ownerID string) ([]db_models.Place, error)
	Update(ctx context.Context, place *db_models.Place) error
	ReplaceAmenities(ctx context.Context, place *db_models.Place, amenities []db_models.Amenity) error
	Delete(ctx context.Context, id string) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

func (p *placeRepository) Insert(ctx context.Context, place *db_models.Place) error {
	return p.db.WithContext(ctx).Create(place).Error
}

func (p *placeRepository) FindByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := p.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Reviews").
		First(&place, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &place, nil
}

func (p *placeRepository) FindAll(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := p.db.WithContext(ctx).Preload("Amenities").Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (p *placeRepository) FindByOwner(ctx context.Context, ownerID string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := p.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (p *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return p.db.WithContext(ctx).Omit("Amenities", "Reviews").Save(place).Error
}

func (p *placeRepository) ReplaceAmenities(ctx context.Context, place *db_models.Place, amenities []db_models.Amenity) error {
	return p.db.WithContext(ctx).Model(place).Association("Amenities").Replace(amenities)
}

func (p *placeRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
}
