// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 9897

	// DefaultMaxRequestSize is the default maximum request body size (10MB).
	DefaultMaxRequestSize = 10 << 20

	// DefaultClientRetryMaxAttempts is the default number of retry attempts.
	DefaultClientRetryMaxAttempts = 3

	// DefaultClientRetryMultiplier is the default exponential backoff multiplier.
	DefaultClientRetryMultiplier = 2.0

	// DefaultClientRetryJitterFactor is the default jitter percentage (±25%).
	DefaultClientRetryJitterFactor = 0.25

	// DefaultClientCircuitMaxFailures is the default failures before circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultClientCircuitHalfOpenLimit is the default successes to close circuit.
	DefaultClientCircuitHalfOpenLimit = 3

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultDatabaseMaxConns is the default pgx pool size.
	DefaultDatabaseMaxConns = 10

	// DefaultCacheMaxEntries bounds the in-memory geocoding cache.
	DefaultCacheMaxEntries = 1000

	// DefaultSocialMaxKeywords caps the number of feed searches per request.
	DefaultSocialMaxKeywords = 5

	// DefaultSocialPostsPerKeyword is the feed search page size.
	DefaultSocialPostsPerKeyword = 10

	// DefaultSocialConcurrency bounds parallel feed searches.
	DefaultSocialConcurrency = 3

	// DefaultImageMaxBytes is the largest image fetched for verification (8MB).
	DefaultImageMaxBytes = 8 << 20

	// DefaultBroadcastBufferSize is the per-subscriber event buffer.
	DefaultBroadcastBufferSize = 64
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"      validate:"required"`
	CORS      CORSConfig      `koanf:"cors"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"     validate:"required"`
	Gemini    GeminiConfig    `koanf:"gemini"    validate:"required"`
	Mapbox    MapboxConfig    `koanf:"mapbox"    validate:"required"`
	Bluesky   BlueskyConfig   `koanf:"bluesky"   validate:"required"`
	Social    SocialConfig    `koanf:"social"    validate:"required"`
	Images    ImagesConfig    `koanf:"images"    validate:"required"`
	Events    EventsConfig    `koanf:"events"`
	Broadcast BroadcastConfig `koanf:"broadcast" validate:"required"`
	Features  map[string]bool `koanf:"features"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"min=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig maps X-User-ID values to roles.
type AuthConfig struct {
	Header string            `koanf:"header" validate:"required"`
	Users  map[string]string `koanf:"users"  validate:"required,min=1,dive,oneof=admin contributor viewer"`
}

// CORSConfig configures the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// ClientConfig contains HTTP client settings for downstream services.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// RetryConfig contains retry settings for HTTP clients.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// DatabaseConfig configures the Postgres pool. An empty URL selects the
// in-memory store.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int32         `koanf:"max_conns"         validate:"omitempty,min=1"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

// CacheConfig configures lookup caching for extraction and geocoding.
type CacheConfig struct {
	TTL        time.Duration `koanf:"ttl"         validate:"required,min=1s"`
	MaxEntries int           `koanf:"max_entries" validate:"required,min=1"`
}

// GeminiConfig configures the Gemini generative language API.
type GeminiConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"    validate:"required"`
}

// MapboxConfig configures the Mapbox geocoding API.
type MapboxConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
	Token   string `koanf:"token"`
}

// BlueskyConfig configures the Bluesky XRPC API. Identifier and password are
// optional; without them searches are anonymous.
type BlueskyConfig struct {
	BaseURL     string `koanf:"base_url"     validate:"required,url"`
	Name        string `koanf:"name"         validate:"required"`
	Identifier  string `koanf:"identifier"`
	AppPassword string `koanf:"app_password" validate:"required_with=Identifier"`
}

// SocialConfig bounds feed ingestion per request.
type SocialConfig struct {
	MaxKeywords     int `koanf:"max_keywords"      validate:"required,min=1,max=20"`
	PostsPerKeyword int `koanf:"posts_per_keyword" validate:"required,min=1,max=100"`
	Concurrency     int `koanf:"concurrency"       validate:"required,min=1,max=10"`
}

// ImagesConfig bounds image downloads for verification.
type ImagesConfig struct {
	Name     string `koanf:"name"      validate:"required"`
	MaxBytes int64  `koanf:"max_bytes" validate:"required,min=1"`
}

// EventsConfig configures optional external event sinks.
type EventsConfig struct {
	Kafka KafkaConfig `koanf:"kafka"`
}

// KafkaConfig configures the Kafka event sink.
type KafkaConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Brokers      []string      `koanf:"brokers"       validate:"required_if=Enabled true"`
	Topic        string        `koanf:"topic"         validate:"required_if=Enabled true"`
	BatchTimeout time.Duration `koanf:"batch_timeout"`
}

// BroadcastConfig configures the Server-Sent Events stream.
type BroadcastConfig struct {
	BufferSize int           `koanf:"buffer_size" validate:"required,min=1"`
	Keepalive  time.Duration `koanf:"keepalive"   validate:"required,min=1s"`
}

// DatabaseEnabled reports whether a Postgres URL is configured.
func (c *Config) DatabaseEnabled() bool {
	return strings.TrimSpace(c.Database.URL) != ""
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "disaster-response",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "0s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/disaster-response.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "disaster-response",
		"telemetry.sampling_rate": 1.0,

		"auth.header": "X-User-ID",
		"auth.users": map[string]any{
			"netrunnerX":  "contributor",
			"reliefAdmin": "admin",
		},

		"cors.allowed_origins": []string{"http://localhost:5173"},

		"client.timeout":                           "30s",
		"client.retry.max_attempts":                DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":            "100ms",
		"client.retry.max_interval":                "5s",
		"client.retry.multiplier":                  DefaultClientRetryMultiplier,
		"client.retry.jitter_factor":               DefaultClientRetryJitterFactor,
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"database.url":                "",
		"database.max_conns":          DefaultDatabaseMaxConns,
		"database.max_conn_idle_time": "5m",
		"database.migrate_on_start":   false,

		"cache.ttl":         "1h",
		"cache.max_entries": DefaultCacheMaxEntries,

		"gemini.base_url": "https://generativelanguage.googleapis.com",
		"gemini.name":     "gemini",
		"gemini.api_key":  "",
		"gemini.model":    "gemini-1.5-flash",

		"mapbox.base_url": "https://api.mapbox.com",
		"mapbox.name":     "mapbox",
		"mapbox.token":    "",

		"bluesky.base_url":     "https://public.api.bsky.app",
		"bluesky.name":         "bluesky",
		"bluesky.identifier":   "",
		"bluesky.app_password": "",

		"social.max_keywords":      DefaultSocialMaxKeywords,
		"social.posts_per_keyword": DefaultSocialPostsPerKeyword,
		"social.concurrency":       DefaultSocialConcurrency,

		"images.name":      "image-fetch",
		"images.max_bytes": DefaultImageMaxBytes,

		"events.kafka.enabled":       false,
		"events.kafka.brokers":       []string{},
		"events.kafka.topic":         "disaster-events",
		"events.kafka.batch_timeout": "50ms",

		"broadcast.buffer_size": DefaultBroadcastBufferSize,
		"broadcast.keepalive":   "25s",

		"features.auto_relief_resource":   true,
		"features.persist_social_reports": true,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix, "__" separates sections)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.Provider("APP_", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_DATABASE__MAX_CONNS to database.max_conns. Single
// underscores stay inside key names.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "APP_")), "__", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
