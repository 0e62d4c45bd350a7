package auth

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the auth module configuration, loaded from the environment.
// The signing secret and the seeded admin credentials are deployment inputs;
// the defaults exist for local development only.
type Config struct {
	DBPath        string        `env:"AUTH_DB_PATH" envDefault:"tareas_auth.db"`
	JWTSecret     string        `env:"JWT_SECRET_KEY" envDefault:"change-me-in-production"`
	JWTLifetime   time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`
	JWTIssuer     string        `env:"JWT_ISSUER" envDefault:"task-manager-api"`
	AdminEmail    string        `env:"ADMIN_EMAIL" envDefault:"admin@tareas.local"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123456"`
}

// LoadConfig parses the auth configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse auth config: %w", err)
	}
	return cfg, nil
}
