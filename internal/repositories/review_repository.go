package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	FindByID(ctx context.Context, id string) (*db_models.Review, error)
	FindAll(ctx context.Context) ([]db_models.Review, error)
	FindByPlace(ctx context.Context, placeID string) ([]db_models.Review, error)
	FindByUserAndPlace(ctx context.Context, userID, placeID string) (*db_models.Review, error)
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByPlace(ctx context.Context, placeID string) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Where("place_id = ?", placeID).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByUserAndPlace(ctx context.Context, userID, placeID string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&review).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id).Error
}
