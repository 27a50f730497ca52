package main

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hbnb/cmd/fx/amenitiesfx"
	"hbnb/cmd/fx/db_fx"
	"hbnb/cmd/fx/places_fx"
	"hbnb/cmd/fx/reviews_fx"
	"hbnb/cmd/fx/users_fx"
	"hbnb/internal/config"
	"hbnb/internal/infra"
	"hbnb/internal/services"
)

func main() {
	app := fx.New(
		db_fx.Module,
		users_fx.Module,
		places_fx.Module,
		reviews_fx.Module,
		amenitiesfx.Module,

		fx.Invoke(RunSetup),
	)

	app.Run()
}

// RunSetup declares the schema, applies the seed records and exits. It is
// the runnable equivalent of loading schema.sql plus initial_data.sql.
func RunSetup(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	db *gorm.DB,
	cfg *config.Config,
	userService services.UserServiceInterface,
	amenityService services.AmenityServiceInterface) {

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			if err := infra.Seed(db, cfg); err != nil {
				return err
			}

			admin, err := userService.GetUserByEmail(ctx, cfg.AdminEmail)
			if err != nil {
				return err
			}
			amenities, err := amenityService.GetAllAmenities(ctx)
			if err != nil {
				return err
			}
			log.Printf("database ready: admin %s (%s), %d amenities", admin.Email, admin.ID, len(amenities))

			return shutdowner.Shutdown()
		},
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db)
			return nil
		},
	})
}
