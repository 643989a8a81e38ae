package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adsight/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the configs package for defaults.
type Config struct {
	// Env is the deployment environment. "dev" relaxes the secret checks
	// performed by Validate.
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the repository backend: "postgres" or "memory".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// SeedDemo loads the demo account and its campaigns on startup when
	// the store has no such user yet.
	SeedDemo     bool   `env:"SEED_DEMO" envDefault:"false"`
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"demo1234"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Advisor  configs.Advisor  `envPrefix:"ADVISOR_"`
	CORS     configs.CORS     `envPrefix:"CORS_"`
	Rate     configs.Rate     `envPrefix:"RATE_"`
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads an optional .env file and then parses environment variables
// into a Config. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const minSecretLen = 32

// Validate rejects configurations that would run insecurely or cannot be
// wired.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if c.Env != "dev" && len(c.Auth.JWTSecret) < minSecretLen {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", minSecretLen)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	if c.Advisor.Timeout <= 0 {
		return errors.New("ADVISOR_TIMEOUT must be positive")
	}
	return nil
}
