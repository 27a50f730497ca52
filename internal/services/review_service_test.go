package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb/internal/models/request_models"
	"hbnb/pkg/utils"
)

func TestCreateReviewOwnPlaceRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	place := env.createPlace(t, owner.ID)

	_, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "My own palace",
		Rating:  5,
		UserID:  owner.ID,
		PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, utils.ErrOwnPlaceReview)
}

func TestCreateReviewOncePerUserAndPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guest := env.createUser(t, "guest@example.com")
	place := env.createPlace(t, owner.ID)

	review, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Wonderful stay",
		Rating:  5,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Trying again",
		Rating:  4,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, utils.ErrAlreadyReviewed)
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guest := env.createUser(t, "guest@example.com")
	place := env.createPlace(t, owner.ID)

	for _, rating := range []int{0, 6} {
		_, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
			Text:    "Off the scale",
			Rating:  rating,
			UserID:  guest.ID,
			PlaceID: place.ID,
		})
		assert.ErrorIs(t, err, utils.ErrValidation, "rating %d", rating)
	}

	_, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Rating:  3,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateReviewMissingParents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guest := env.createUser(t, "guest@example.com")
	place := env.createPlace(t, owner.ID)

	_, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Ghost author",
		Rating:  3,
		UserID:  "b9bdbc20-0000-0000-0000-000000000000",
		PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	_, err = env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Ghost place",
		Rating:  3,
		UserID:  guest.ID,
		PlaceID: "b9bdbc20-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestGetReviewsByPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guestA := env.createUser(t, "a@example.com")
	guestB := env.createUser(t, "b@example.com")
	place := env.createPlace(t, owner.ID)

	for _, guest := range []string{guestA.ID, guestB.ID} {
		_, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
			Text:    "Stayed here",
			Rating:  4,
			UserID:  guest,
			PlaceID: place.ID,
		})
		require.NoError(t, err)
	}

	reviews, err := env.reviews.GetReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = env.reviews.GetReviewsByPlace(ctx, "b9bdbc20-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestUpdateReviewTextAndRatingOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guest := env.createUser(t, "guest@example.com")
	place := env.createPlace(t, owner.ID)

	review, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Initial impression",
		Rating:  3,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	updated, err := env.reviews.UpdateReview(ctx, review.ID, request_models.UpdateReviewRequest{
		Text:   strPtr("Changed my mind"),
		Rating: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Changed my mind", updated.Text)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, guest.ID, updated.UserID)
	assert.Equal(t, place.ID, updated.PlaceID)

	_, err = env.reviews.UpdateReview(ctx, review.ID, request_models.UpdateReviewRequest{
		Rating: intPtr(0),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner@example.com")
	guest := env.createUser(t, "guest@example.com")
	place := env.createPlace(t, owner.ID)

	review, err := env.reviews.CreateReview(ctx, request_models.CreateReviewRequest{
		Text:    "Short stay",
		Rating:  2,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.reviews.DeleteReview(ctx, review.ID))

	_, err = env.reviews.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}
