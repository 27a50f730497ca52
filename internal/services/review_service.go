package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
	"hbnb/internal/models/request_models"
	"hbnb/internal/models/response_models"
	"hbnb/internal/repositories"
	"hbnb/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
	GetReview(ctx context.Context, id string) (*response_models.ReviewResponse, error)
	GetAllReviews(ctx context.Context) ([]response_models.ReviewResponse, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, id string, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	placeRepo  repositories.PlaceRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	userRepo repositories.UserRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		userRepo:   userRepo,
	}
}

func (r *ReviewService) CreateReview(ctx context.Context, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	if err := validateReviewFields(request.Text, request.Rating); err != nil {
		return nil, err
	}

	user, err := r.userRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	place, err := r.placeRepo.FindByID(ctx, request.PlaceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	if place.OwnerID == user.ID {
		return nil, utils.ErrOwnPlaceReview
	}

	existing, err := r.reviewRepo.FindByUserAndPlace(ctx, request.UserID, request.PlaceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyReviewed
	}

	review := &db_models.Review{
		Text:    request.Text,
		Rating:  request.Rating,
		UserID:  user.ID,
		PlaceID: place.ID,
	}

	if err := r.reviewRepo.Insert(ctx, review); err != nil {
		// the (user_id, place_id) unique index closes the pre-check race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrAlreadyReviewed
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, utils.ErrPlaceNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return toReviewResponse(review), nil
}

func (r *ReviewService) GetReview(ctx context.Context, id string) (*response_models.ReviewResponse, error) {
	review, err := r.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	return toReviewResponse(review), nil
}

func (r *ReviewService) GetAllReviews(ctx context.Context) ([]response_models.ReviewResponse, error) {
	reviews, err := r.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponses(reviews), nil
}

func (r *ReviewService) GetReviewsByPlace(ctx context.Context, placeID string) ([]response_models.ReviewResponse, error) {
	place, err := r.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	reviews, err := r.reviewRepo.FindByPlace(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponses(reviews), nil
}

func (r *ReviewService) UpdateReview(ctx context.Context, id string, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error) {
	review, err := r.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}

	if request.Text != nil {
		review.Text = *request.Text
	}
	if request.Rating != nil {
		review.Rating = *request.Rating
	}
	if err := validateReviewFields(review.Text, review.Rating); err != nil {
		return nil, err
	}

	if err := r.reviewRepo.Update(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toReviewResponse(review), nil
}

func (r *ReviewService) DeleteReview(ctx context.Context, id string) error {
	review, err := r.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	if err := r.reviewRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func validateReviewFields(text string, rating int) error {
	if text == "" {
		return validationError("review text is required")
	}
	if rating < 1 || rating > 5 {
		return validationError("rating must be between 1 and 5")
	}
	return nil
}

func toReviewResponse(review *db_models.Review) *response_models.ReviewResponse {
	return &response_models.ReviewResponse{
		ID:        review.ID.String(),
		Text:      review.Text,
		Rating:    review.Rating,
		UserID:    review.UserID.String(),
		PlaceID:   review.PlaceID.String(),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func toReviewResponses(reviews []db_models.Review) []response_models.ReviewResponse {
	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *toReviewResponse(&reviews[i]))
	}
	return responses
}
