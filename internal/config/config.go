package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Env string

const (
	EnvLocal  Env = "local"
	EnvDocker Env = "docker"
)

type Config struct {
	AppEnv          Env           `env:"APP_ENV" envDefault:"local"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// Store selects the transaction store: "postgres" or "memory".
	Store string `env:"TRANSACTION_STORE" envDefault:"postgres"`
	DB    DB
}

// DB keeps the BLUEPRINT_DB_* variable names used by the existing deployments.
type DB struct {
	Host            string `env:"BLUEPRINT_DB_HOST" envDefault:"localhost"`
	Port            string `env:"BLUEPRINT_DB_PORT" envDefault:"5432"`
	Database        string `env:"BLUEPRINT_DB_DATABASE" envDefault:"payments"`
	Username        string `env:"BLUEPRINT_DB_USERNAME" envDefault:"postgres"`
	Password        string `env:"BLUEPRINT_DB_PASSWORD"`
	Schema          string `env:"BLUEPRINT_DB_SCHEMA" envDefault:"public"`
	BootstrapSchema bool   `env:"DB_BOOTSTRAP_SCHEMA" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AppEnv != EnvLocal && c.AppEnv != EnvDocker {
		return fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", c.AppEnv)
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	switch c.Store {
	case "postgres", "memory":
	default:
		return fmt.Errorf("invalid TRANSACTION_STORE: %s (must be 'postgres' or 'memory')", c.Store)
	}
	return nil
}

func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.Username, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   d.Database,
	}
	q := url.Values{}
	q.Set("sslmode", "disable")
	q.Set("search_path", d.Schema)
	u.RawQuery = q.Encode()
	return u.String()
}
