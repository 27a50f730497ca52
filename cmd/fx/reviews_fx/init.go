package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hbnb/internal/repositories"
	"hbnb/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	userRepo repositories.UserRepository) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, placeRepo, userRepo)
}
