package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment, with an optional .env file
// for local runs.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// bolt (default), postgres or memory.
	StoreBackend string `envconfig:"STORE_BACKEND" default:"bolt"`
	BoltPath     string `envconfig:"BOLT_PATH" default:"techstore.db"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
