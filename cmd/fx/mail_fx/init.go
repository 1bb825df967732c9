package mail_fx

import (
	"go.uber.org/fx"

	"wander/internal/config"
	"wander/internal/services"
	"wander/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore, provideMailService)

func provideResetTokenStore() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg.SMTP, cfg.AppName, cfg.AppBaseURL)
}
