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

type AmenityServiceInterface interface {
	CreateAmenity(ctx context.Context, request request_models.CreateAmenityRequest) (*response_models.AmenityResponse, error)
	GetAmenity(ctx context.Context, id string) (*response_models.AmenityResponse, error)
	GetAllAmenities(ctx context.Context) ([]response_models.AmenityResponse, error)
	UpdateAmenity(ctx context.Context, id string, request request_models.UpdateAmenityRequest) (*response_models.AmenityResponse, error)
	DeleteAmenity(ctx context.Context, id string) error
}

type AmenityService struct {
	amenityRepo repositories.AmenityRepositoryInterface
}

func NewAmenityService(amenityRepo repositories.AmenityRepositoryInterface) AmenityServiceInterface {
	return &AmenityService{
		amenityRepo: amenityRepo,
	}
}

func (a *AmenityService) CreateAmenity(ctx context.Context, request request_models.CreateAmenityRequest) (*response_models.AmenityResponse, error) {
	if err := validateAmenityName(request.Name); err != nil {
		return nil, err
	}

	existing, err := a.amenityRepo.FindByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateAmenity
	}

	amenity := &db_models.Amenity{
		Name:        request.Name,
		Description: request.Description,
	}

	if err := a.amenityRepo.Insert(ctx, amenity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateAmenity
		}
		return nil, utils.ErrDatabaseError
	}

	return toAmenityResponse(amenity), nil
}

func (a *AmenityService) GetAmenity(ctx context.Context, id string) (*response_models.AmenityResponse, error) {
	amenity, err := a.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if amenity == nil {
		return nil, utils.ErrAmenityNotFound
	}
	return toAmenityResponse(amenity), nil
}

func (a *AmenityService) GetAllAmenities(ctx context.Context) ([]response_models.AmenityResponse, error) {
	amenities, err := a.amenityRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AmenityResponse, 0, len(amenities))
	for i := range amenities {
		responses = append(responses, *toAmenityResponse(&amenities[i]))
	}
	return responses, nil
}

func (a *AmenityService) UpdateAmenity(ctx context.Context, id string, request request_models.UpdateAmenityRequest) (*response_models.AmenityResponse, error) {
	amenity, err := a.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if amenity == nil {
		return nil, utils.ErrAmenityNotFound
	}

	if request.Name != nil && *request.Name != amenity.Name {
		if err := validateAmenityName(*request.Name); err != nil {
			return nil, err
		}
		existing, err := a.amenityRepo.FindByName(ctx, *request.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrDuplicateAmenity
		}
		amenity.Name = *request.Name
	}
	if request.Description != nil {
		amenity.Description = *request.Description
	}

	if err := a.amenityRepo.Update(ctx, amenity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateAmenity
		}
		return nil, utils.ErrDatabaseError
	}

	return toAmenityResponse(amenity), nil
}

func (a *AmenityService) DeleteAmenity(ctx context.Context, id string) error {
	amenity, err := a.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if amenity == nil {
		return utils.ErrAmenityNotFound
	}

	// place_amenity rows cascade, places themselves are untouched
	if err := a.amenityRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func validateAmenityName(name string) error {
	if name == "" || len(name) > 50 {
		return validationError("amenity name is required and must be <= 50 characters")
	}
	return nil
}

func toAmenityResponse(amenity *db_models.Amenity) *response_models.AmenityResponse {
	return &response_models.AmenityResponse{
		ID:          amenity.ID.String(),
		Name:        amenity.Name,
		Description: amenity.Description,
		CreatedAt:   amenity.CreatedAt,
		UpdatedAt:   amenity.UpdatedAt,
	}
}
