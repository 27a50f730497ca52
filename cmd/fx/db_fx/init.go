package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hbnb/internal/config"
	"hbnb/internal/infra"
)

var Module = fx.Provide(
	config.Load, provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.OpenDatabase(cfg)
}
