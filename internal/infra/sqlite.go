package infra

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSqlite opens a file-backed or in-memory database. Cascades depend on
// foreign_keys being on, which sqlite leaves off per connection.
func InitSqlite(dsn string) *gorm.DB {
	if dsn == "" {
		dsn = "hbnb.db?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return db
}
