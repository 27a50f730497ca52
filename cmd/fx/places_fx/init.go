package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hbnb/internal/repositories"
	"hbnb/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	userRepo repositories.UserRepository,
	amenityRepo repositories.AmenityRepositoryInterface) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, userRepo, amenityRepo)
}
