package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
	"hbnb/internal/repositories"
)

func TestReviewRepositoryDuplicatePairSurfaces(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewReviewRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	guest := seedUser(t, db, "guest@example.com")
	place := seedPlace(t, db, owner, "Cabin")

	require.NoError(t, repo.Insert(ctx, &db_models.Review{Text: "Good", Rating: 4, UserID: guest.ID, PlaceID: place.ID}))

	err := repo.Insert(ctx, &db_models.Review{Text: "Again", Rating: 2, UserID: guest.ID, PlaceID: place.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestReviewRepositoryLookups(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewReviewRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	guestA := seedUser(t, db, "a@example.com")
	guestB := seedUser(t, db, "b@example.com")
	place := seedPlace(t, db, owner, "Cabin")
	otherPlace := seedPlace(t, db, owner, "Villa")

	require.NoError(t, repo.Insert(ctx, &db_models.Review{Text: "One", Rating: 5, UserID: guestA.ID, PlaceID: place.ID}))
	require.NoError(t, repo.Insert(ctx, &db_models.Review{Text: "Two", Rating: 3, UserID: guestB.ID, PlaceID: place.ID}))
	require.NoError(t, repo.Insert(ctx, &db_models.Review{Text: "Three", Rating: 4, UserID: guestA.ID, PlaceID: otherPlace.ID}))

	byPlace, err := repo.FindByPlace(ctx, place.ID.String())
	require.NoError(t, err)
	assert.Len(t, byPlace, 2)

	pair, err := repo.FindByUserAndPlace(ctx, guestA.ID.String(), place.ID.String())
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "One", pair.Text)

	missing, err := repo.FindByUserAndPlace(ctx, guestB.ID.String(), otherPlace.ID.String())
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReviewRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewReviewRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	guest := seedUser(t, db, "guest@example.com")
	place := seedPlace(t, db, owner, "Cabin")

	review := &db_models.Review{Text: "Okay", Rating: 3, UserID: guest.ID, PlaceID: place.ID}
	require.NoError(t, repo.Insert(ctx, review))

	review.Rating = 4
	review.Text = "Better on second thought"
	require.NoError(t, repo.Update(ctx, review))

	reloaded, err := repo.FindByID(ctx, review.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Rating)

	require.NoError(t, repo.Delete(ctx, review.ID.String()))
	gone, err := repo.FindByID(ctx, review.ID.String())
	require.NoError(t, err)
	assert.Nil(t, gone)
}
