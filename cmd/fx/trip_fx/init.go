package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB, itinRepo repositories.ItineraryRepository) repositories.TripRepository {
	return repositories.NewTripRepository(db, itinRepo)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
