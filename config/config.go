package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       int           `env:"APP_PORT"       envDefault:"8080"`
	TaggerURL     string        `env:"TAGGER_URL"`
	TaggerTimeout time.Duration `env:"TAGGER_TIMEOUT" envDefault:"30s"`
	ModelsFile    string        `env:"MODELS_FILE"`
	CachePath     string        `env:"CACHE_PATH"`
	CacheTTL      time.Duration `env:"CACHE_TTL"      envDefault:"24h"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT"  envDefault:"30s"`
	UserAgent     string        `env:"USER_AGENT"     envDefault:"Recapper/1.0"`
	ProxyURL      string        `env:"PROXY_URL"`
	RenderJS      bool          `env:"RENDER_JS"`
	HelpContact   string        `env:"HELP_CONTACT"   envDefault:"the project maintainers"`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
