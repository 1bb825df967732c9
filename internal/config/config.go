// Package config holds the environment-backed application configuration.
// main loads .env via godotenv before Parse runs, so local development and
// container deployments read the same variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	PostgresURL string        `env:"POSTGRES_URL,required"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	SMTP SMTPConfig `envPrefix:"SMTP_"`

	AppName    string `env:"APP_NAME" envDefault:"wander"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:3000"`
}

type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
	FromName string `env:"FROM_NAME" envDefault:"Wander"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env config: %w", err)
	}
	return cfg, nil
}
