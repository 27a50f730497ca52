package amenitiesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hbnb/internal/repositories"
	"hbnb/internal/services"
)

var Module = fx.Provide(
	provideAmenityRepo, provideAmenityService)

func provideAmenityRepo(db *gorm.DB) repositories.AmenityRepositoryInterface {
	return repositories.NewAmenityRepository(db)
}

func provideAmenityService(amenityRepo repositories.AmenityRepositoryInterface) services.AmenityServiceInterface {
	return services.NewAmenityService(amenityRepo)
}
