package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hbnb/internal/infra"
	"hbnb/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *db_models.User {
	t.Helper()
	user := &db_models.User{FirstName: "Test", LastName: "User", Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPlace(t *testing.T, db *gorm.DB, owner *db_models.User, title string) *db_models.Place {
	t.Helper()
	place := &db_models.Place{Title: title, Price: 99.99, OwnerID: owner.ID}
	require.NoError(t, db.Create(place).Error)
	return place
}
