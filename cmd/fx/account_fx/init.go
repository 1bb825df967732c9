package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/api/controllers"
	"wander/internal/config"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/auth"
	"wander/pkg/memcache"
)

var Module = fx.Provide(
	provideVerifier,
	provideAccountRepo,
	provideAccountService,
	provideAccountController,
)

func provideVerifier(cfg *config.Config) *auth.JWTVerifier {
	return auth.NewJWTVerifier(cfg.JWTSecret, cfg.TokenTTL)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	verifier *auth.JWTVerifier,
	resetTokens memcache.ResetTokenStore,
	mail services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, verifier, resetTokens, mail)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
