package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the viewer reads from its environment.
type Config struct {
	HTTPPort  string `env:"PORT"       env-default:"8080"`
	AdminPort string `env:"ADMIN_PORT" env-default:"9090"`

	// APIURL is the Mission API root; missions live under /mission-viewing.
	APIURL          string        `env:"API_URL"          env-default:"http://localhost:8000"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"10s"`

	JWTSecret   string `env:"JWT_SECRET"`
	ServiceName string `env:"SERVICE_NAME" env-default:"mission-viewer"`

	RabbitMQURL string `env:"RABBITMQ_URL"`

	DateLayout string        `env:"DATE_LAYOUT" env-default:"1/2/06"`
	LoadWait   time.Duration `env:"LOAD_WAIT"   env-default:"2s"`
}

// NewConfig reads the optional file at ENV_PATH, then the process
// environment on top of it.
func NewConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("ENV_PATH")
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// GetJWTSecret returns the shared secret used to sign upstream tokens.
// Nil means upstream requests go out without an Authorization header.
func (c *Config) GetJWTSecret() []byte {
	if c.JWTSecret == "" {
		return nil
	}
	return []byte(c.JWTSecret)
}

// MissionViewingURL is the base path of the mission-viewing endpoints.
func (c *Config) MissionViewingURL() string {
	base := c.APIURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/mission-viewing"
}
