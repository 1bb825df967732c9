package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/cmd/fx/account_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/itinerary_fx"
	"wander/cmd/fx/mail_fx"
	"wander/cmd/fx/stop_fx"
	"wander/cmd/fx/suggestion_fx"
	"wander/cmd/fx/trip_fx"
	"wander/internal/api/controllers"
	"wander/internal/config"
	"wander/internal/infra"
	"wander/internal/services"
	"wander/pkg/auth"
	"wander/pkg/logger"
	"wander/pkg/middleware"
)

func main() {
	// Missing .env is fine; containers set real env vars.
	_ = godotenv.Load()
	logger.New("server")

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		stop_fx.Module,
		suggestion_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	stopController *controllers.StopController,
	suggestionController *controllers.SuggestionController,
	verifier *auth.JWTVerifier,
	accountService services.AccountServiceInterface,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	gate := middleware.AuthGate(verifier, accountService)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/request-password-reset", accountController.RequestPasswordReset)
	authGroup.POST("/reset-password", accountController.ResetPassword)

	accounts := r.Group("/accounts", gate)
	accounts.GET("/me", accountController.Me)

	trips := r.Group("/trips", gate)
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.PATCH("/:tripId", tripController.UpdateTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)

	trips.GET("/:tripId/itinerary", itineraryController.GetItinerary)
	trips.POST("/:tripId/itinerary/items", itineraryController.AddStop)
	trips.PATCH("/:tripId/itinerary/items/:itemId", itineraryController.UpdateItem)
	trips.DELETE("/:tripId/itinerary/items/:itemId", itineraryController.RemoveStop)

	stops := r.Group("/stops", gate)
	stops.GET("", stopController.ListStops)
	stops.GET("/:stopId", stopController.GetStopByID)
	stops.POST("/search", stopController.SemanticSearch)

	admin := stops.Group("", middleware.RoleMiddleware("admin"))
	admin.POST("", stopController.CreateStop)
	admin.PATCH("/:stopId", stopController.UpdateStop)
	admin.DELETE("/:stopId", stopController.DeleteStop)

	suggestions := r.Group("/suggestions", gate)
	suggestions.POST("", suggestionController.SuggestItinerary)

	return r
}
