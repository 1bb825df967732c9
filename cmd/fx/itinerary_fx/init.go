package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService, provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	itinRepo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, stopRepo, itinRepo)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
