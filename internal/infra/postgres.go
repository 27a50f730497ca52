package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hbnb/internal/config"
)

func OpenDatabase(cfg *config.Config) *gorm.DB {
	switch cfg.DBDriver {
	case "sqlite":
		return InitSqlite(cfg.DBSource)
	default:
		return InitPostgresql(cfg.DBSource)
	}
}

func InitPostgresql(dsn string) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}
