package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderCommunity  = "community"
	ProviderDiveharder = "diveharder"
	ProviderDirect     = "direct"
)

type Config struct {
	Upstream  UpstreamConfig
	Statics   StaticsConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Tracker   TrackerConfig
	Server    ServerConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
}

type UpstreamConfig struct {
	Provider       string        `env:"HD2_PROVIDER" envDefault:"diveharder"`
	CommunityURL   string        `env:"HD2_COMMUNITY_URL" envDefault:"https://api.helldivers2.dev"`
	DiveharderURL  string        `env:"HD2_DIVEHARDER_URL" envDefault:"https://api.diveharder.com"`
	DirectURL      string        `env:"HD2_DIRECT_URL" envDefault:"https://api.live.prod.thehelldiversgame.com"`
	ClientName     string        `env:"HD2_CLIENT_NAME" envDefault:"DefaultClientName"`
	Language       string        `env:"HD2_LANGUAGE" envDefault:"en-US"`
	Timeout        time.Duration `env:"HD2_TIMEOUT" envDefault:"8s"`
	WarSeason      int           `env:"HD2_WAR_SEASON" envDefault:"801"`
	NewsMaxEntries int           `env:"HD2_NEWS_MAX_ENTRIES" envDefault:"1024"`
}

type StaticsConfig struct {
	// Empty means the embedded reference set
	Path string `env:"HD2_STATIC_PATH"`
}

type RateLimitConfig struct {
	UpstreamRequestsPerSecond float64 `env:"UPSTREAM_REQUESTS_PER_SECOND" envDefault:"2"`
	UpstreamBurstSize         int     `env:"UPSTREAM_BURST_SIZE" envDefault:"5"`
	Enabled                   bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond         float64 `env:"RATE_LIMIT_REQUESTS_PER_SECOND" envDefault:"10"`
	BurstSize                 int     `env:"RATE_LIMIT_BURST_SIZE" envDefault:"20"`
	TrustProxy                bool    `env:"RATE_LIMIT_TRUST_PROXY" envDefault:"false"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	URL      string        `env:"REDIS_URL"`
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"20s"`
}

type TrackerConfig struct {
	History      int           `env:"TRACKER_HISTORY" envDefault:"6"`
	PollInterval time.Duration `env:"TRACKER_POLL_INTERVAL" envDefault:"5m"`
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

type FrontendConfig struct {
	URL       string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	CORSDebug bool   `env:"CORS_DEBUG" envDefault:"false"`
}

type LoggingConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"debug"`
	Format     string `env:"LOG_FORMAT" envDefault:"text"`
	JSONFormat bool
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load parses the environment into a validated Config without touching
// GlobalConfig.
func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.Logging.JSONFormat = config.Server.Environment == "production" || config.Logging.Format == "json"

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Upstream.Provider {
	case ProviderCommunity, ProviderDiveharder, ProviderDirect:
	default:
		return fmt.Errorf("HD2_PROVIDER must be one of %s, %s, %s", ProviderCommunity, ProviderDiveharder, ProviderDirect)
	}

	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("HD2_TIMEOUT must be positive")
	}

	if c.RateLimit.UpstreamRequestsPerSecond <= 0 {
		return fmt.Errorf("UPSTREAM_REQUESTS_PER_SECOND must be positive")
	}

	if c.Tracker.History < 2 {
		return fmt.Errorf("TRACKER_HISTORY must be at least 2")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	return nil
}

// ProviderURL returns the base URL of the configured upstream provider.
func (c *Config) ProviderURL() string {
	switch c.Upstream.Provider {
	case ProviderCommunity:
		return c.Upstream.CommunityURL
	case ProviderDirect:
		return c.Upstream.DirectURL
	default:
		return c.Upstream.DiveharderURL
	}
}
