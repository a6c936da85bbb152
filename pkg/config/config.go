package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV" default:"local" validate:"oneof=local development staging production"`
	Port         int     `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	SentryDSN    string  `envconfig:"SENTRY_DSN" validate:"omitempty,url"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS"`
	RateLimit    float64 `envconfig:"RATE_LIMIT" default:"20" validate:"gte=0"`

	DB struct {
		Name      string `envconfig:"DB_NAME" validate:"required"`
		Host      string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
		Port      int    `envconfig:"DB_PORT" default:"5432" validate:"min=1,max=65535"`
		User      string `envconfig:"DB_USER" validate:"required"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
		MaxConns  int    `envconfig:"DB_MAX_CONNS" default:"10" validate:"gte=0"`
	}
}

// Origins splits AllowOrigins into its comma separated entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
