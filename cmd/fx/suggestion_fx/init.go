package suggestion_fx

import (
	"go.uber.org/fx"

	"wander/internal/api/controllers"
	"wander/internal/services"
	"wander/pkg/ai"
)

var Module = fx.Provide(provideSuggestionService, provideSuggestionController)

func provideSuggestionService(client *ai.Client) services.SuggestionServiceInterface {
	return services.NewSuggestionService(client)
}

func provideSuggestionController(suggestionService services.SuggestionServiceInterface) *controllers.SuggestionController {
	return controllers.NewSuggestionController(suggestionService)
}
