package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	ProjectURL string `env:"PROJECT_URL" envDefault:"https://github.com/EliaLand/FED-text-score-software"`

	ArtifactDataDir      string        `env:"ARTIFACT_DATA_DIR" envDefault:"./data"`
	ArtifactBaseURL      string        `env:"ARTIFACT_BASE_URL" envDefault:"https://raw.githubusercontent.com/EliaLand/FED-text-score-software/main/Plotting"`
	ArtifactManifest     string        `env:"ARTIFACT_MANIFEST"`
	ArtifactFetchTimeout time.Duration `env:"ARTIFACT_FETCH_TIMEOUT" envDefault:"0s"`
	ArtifactConcurrency  int           `env:"ARTIFACT_FETCH_CONCURRENCY" envDefault:"1"`

	SessionSecret       string `env:"SESSION_SECRET"`
	SessionTTLMinutes   int    `env:"SESSION_TTL_MINUTES" envDefault:"720"`
	SessionCookieSecure bool   `env:"SESSION_COOKIE_SECURE"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.ArtifactConcurrency <= 0 {
		cfg.ArtifactConcurrency = 1
	}
	return &cfg, nil
}

// SessionTTL devuelve la duración de una sesión de encuesta.
func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// SecureCookies indica si la cookie de sesion se marca Secure. Siempre en produccion.
func (c *Config) SecureCookies() bool {
	return c.SessionCookieSecure || c.AppEnv == "production"
}

// NewLogger crea el logger según el entorno.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
