package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hbnb/internal/infra"
	"hbnb/internal/models/request_models"
	"hbnb/internal/models/response_models"
	"hbnb/internal/repositories"
	"hbnb/internal/services"
)

type testEnv struct {
	db        *gorm.DB
	users     services.UserServiceInterface
	places    services.PlaceServiceInterface
	reviews   services.ReviewServiceInterface
	amenities services.AmenityServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.AutoMigrate(db))

	userRepo := repositories.NewUserRepository(db)
	placeRepo := repositories.NewPlaceRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	amenityRepo := repositories.NewAmenityRepository(db)

	return &testEnv{
		db:        db,
		users:     services.NewUserService(userRepo),
		places:    services.NewPlaceService(placeRepo, userRepo, amenityRepo),
		reviews:   services.NewReviewService(reviewRepo, placeRepo, userRepo),
		amenities: services.NewAmenityService(amenityRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *response_models.UserResponse {
	t.Helper()
	user, err := e.users.CreateUser(context.Background(), request_models.CreateUserRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createPlace(t *testing.T, ownerID string) *response_models.PlaceResponse {
	t.Helper()
	place, err := e.places.CreatePlace(context.Background(), request_models.CreatePlaceRequest{
		Title:     "Cozy Apartment",
		Price:     120,
		Latitude:  48.85,
		Longitude: 2.35,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return place
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
