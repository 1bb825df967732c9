package stop_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/api/controllers"
	"wander/internal/config"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/ai"
)

var Module = fx.Provide(
	provideAIClient,
	provideStopRepo,
	provideStopEmbeddingRepo,
	provideStopService,
	provideStopController,
)

func provideAIClient(cfg *config.Config) *ai.Client {
	return ai.New(cfg.OpenAIAPIKey)
}

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideStopEmbeddingRepo(db *gorm.DB) repositories.StopEmbeddingRepository {
	return repositories.NewStopEmbeddingRepository(db)
}

func provideStopService(
	stopRepo repositories.StopRepository,
	embeddingRepo repositories.StopEmbeddingRepository,
	client *ai.Client,
) services.StopServiceInterface {
	return services.NewStopService(stopRepo, embeddingRepo, client)
}

func provideStopController(stopService services.StopServiceInterface) *controllers.StopController {
	return controllers.NewStopController(stopService)
}
