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

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, request request_models.CreatePlaceRequest) (*response_models.PlaceResponse, error)
	GetPlace(ctx context.Context, id string) (*response_models.PlaceResponse, error)
	GetAllPlaces(ctx context.Context) ([]response_models.PlaceResponse, error)
	UpdatePlace(ctx context.Context, id string, request request_models.UpdatePlaceRequest) (*response_models.PlaceResponse, error)
	DeletePlace(ctx context.Context, id string) error
}

type PlaceService struct {
	placeRepo   repositories.PlaceRepository
	userRepo    repositories.UserRepository
	amenityRepo repositories.AmenityRepositoryInterface
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	userRepo repositories.UserRepository,
	amenityRepo repositories.AmenityRepositoryInterface) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:   placeRepo,
		userRepo:    userRepo,
		amenityRepo: amenityRepo,
	}
}

func (p *PlaceService) CreatePlace(ctx context.Context, request request_models.CreatePlaceRequest) (*response_models.PlaceResponse, error) {
	if err := validatePlaceFields(request.Title, request.Price, request.Latitude, request.Longitude); err != nil {
		return nil, err
	}

	owner, err := p.userRepo.FindByID(ctx, request.OwnerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrOwnerNotFound
	}

	amenities, err := p.resolveAmenities(ctx, request.Amenities)
	if err != nil {
		return nil, err
	}

	place := &db_models.Place{
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		OwnerID:     owner.ID,
		Amenities:   amenities,
	}

	if err := p.placeRepo.Insert(ctx, place); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, utils.ErrOwnerNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return p.toPlaceResponse(ctx, place), nil
}

func (p *PlaceService) GetPlace(ctx context.Context, id string) (*response_models.PlaceResponse, error) {
	place, err := p.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return p.toPlaceResponse(ctx, place), nil
}

func (p *PlaceService) GetAllPlaces(ctx context.Context) ([]response_models.PlaceResponse, error) {
	places, err := p.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlaceResponse, 0, len(places))
	for i := range places {
		responses = append(responses, *p.toPlaceResponse(ctx, &places[i]))
	}
	return responses, nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, id string, request request_models.UpdatePlaceRequest) (*response_models.PlaceResponse, error) {
	place, err := p.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	if request.Title != nil {
		place.Title = *request.Title
	}
	if request.Description != nil {
		place.Description = *request.Description
	}
	if request.Price != nil {
		place.Price = *request.Price
	}
	if request.Latitude != nil {
		place.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		place.Longitude = *request.Longitude
	}
	if err := validatePlaceFields(place.Title, place.Price, place.Latitude, place.Longitude); err != nil {
		return nil, err
	}

	if request.Amenities != nil {
		amenities, err := p.resolveAmenities(ctx, *request.Amenities)
		if err != nil {
			return nil, err
		}
		if err := p.placeRepo.ReplaceAmenities(ctx, place, amenities); err != nil {
			return nil, utils.ErrDatabaseError
		}
		place.Amenities = amenities
	}

	if err := p.placeRepo.Update(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return p.toPlaceResponse(ctx, place), nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, id string) error {
	place, err := p.placeRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}

	// reviews and amenity associations cascade, the owner is untouched
	if err := p.placeRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Unknown amenity ids are skipped rather than rejected.
func (p *PlaceService) resolveAmenities(ctx context.Context, ids []string) ([]db_models.Amenity, error) {
	amenities := make([]db_models.Amenity, 0, len(ids))
	for _, amenityID := range ids {
		amenity, err := p.amenityRepo.FindByID(ctx, amenityID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if amenity != nil {
			amenities = append(amenities, *amenity)
		}
	}
	return amenities, nil
}

func validatePlaceFields(title string, price, latitude, longitude float64) error {
	if title == "" || len(title) > 100 {
		return validationError("title is required and must be <= 100 characters")
	}
	if price < 0 {
		return validationError("price must be a positive value")
	}
	if latitude < -90 || latitude > 90 {
		return validationError("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return validationError("longitude must be between -180 and 180")
	}
	return nil
}

func (p *PlaceService) toPlaceResponse(ctx context.Context, place *db_models.Place) *response_models.PlaceResponse {
	response := &response_models.PlaceResponse{
		ID:          place.ID.String(),
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID.String(),
		Amenities:   make([]response_models.AmenityResponse, 0, len(place.Amenities)),
		Reviews:     make([]response_models.ReviewResponse, 0, len(place.Reviews)),
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}

	if owner, err := p.userRepo.FindByID(ctx, place.OwnerID.String()); err == nil && owner != nil {
		response.Owner = toUserResponse(owner)
	}
	for i := range place.Amenities {
		response.Amenities = append(response.Amenities, *toAmenityResponse(&place.Amenities[i]))
	}
	for i := range place.Reviews {
		response.Reviews = append(response.Reviews, *toReviewResponse(&place.Reviews[i]))
	}

	return response
}
