package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"
)

// PostgresEndpoint is one side of the read/write database pair.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// URL renders the endpoint as a postgres connection URL. prefix is prepended
// to the database name and sslmode is always set.
func (e PostgresEndpoint) URL(prefix string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}

	query.Set("sslmode", e.SSLMode)

	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + prefix + e.Name,
		RawQuery: query.Encode(),
	}).String()
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"4001"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"tzform"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Authorization,Content-Type,X-API-Key"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Zone struct {
		InfoDir               string `envconfig:"INFO_DIR"                default:"/usr/share/zoneinfo"`
		ResolverCacheSize     int    `envconfig:"RESOLVER_CACHE_SIZE"     default:"4096"`
		DetectURL             string `envconfig:"DETECT_URL"              default:"https://ipapi.co/timezone"`
		DetectTimeoutSeconds  int    `envconfig:"DETECT_TIMEOUT_SECONDS"  default:"3"`
		DetectCacheTTLSeconds int    `envconfig:"DETECT_CACHE_TTL"        default:"3600"`
		ClockIntervalMillis   int    `envconfig:"CLOCK_INTERVAL_MILLIS"   default:"1000"`
		DetectDisabled        bool   `envconfig:"DETECT_DISABLED"`
	} `envconfig:"ZONE"`

	Cache struct {
		Enable bool `envconfig:"ENABLE"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Driver   string `envconfig:"DRIVER" default:"memory"`
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"preference-events"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf Config
	once sync.Once
)

// Load reads envFile into the environment when it exists and decodes the
// environment into a validated Config.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Warn().Err(err).Str("file", envFile).Msg("Env file not loaded, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Get returns the process-wide configuration, loading it from .env on first use.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load(".env")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load service configuration")
		}

		conf = *cfg

		log.Info().Str("env", conf.Server.Env).Str("db", conf.DB.Driver).Msg("Service configuration loaded")
	})

	return &conf
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.DB.Driver {
	case DBDriverMemory:
	case DBDriverPostgres:
		if c.DB.Postgres.Write.Host == "" || c.DB.Postgres.Read.Host == "" {
			result = multierror.Append(result, errors.New("postgres driver requires DB_POSTGRES_READ_HOST and DB_POSTGRES_WRITE_HOST"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver))
	}

	if c.Zone.DetectTimeoutSeconds <= 0 {
		result = multierror.Append(result, errors.New("ZONE_DETECT_TIMEOUT_SECONDS must be positive"))
	}

	if c.Zone.ResolverCacheSize <= 0 {
		result = multierror.Append(result, errors.New("ZONE_RESOLVER_CACHE_SIZE must be positive"))
	}

	if c.Cache.Enable && c.Cache.TTL <= 0 {
		result = multierror.Append(result, errors.New("CACHE_TTL must be positive when the cache is enabled"))
	}

	if limiter := c.App.RateLimiter; limiter.Enable && (limiter.MaxRequests <= 0 || limiter.WindowSeconds <= 0) {
		result = multierror.Append(result, errors.New("APP_RATE_LIMITER_MAX_REQUESTS and APP_RATE_LIMITER_WINDOW_SECONDS must be positive"))
	}

	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		result = multierror.Append(result, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set"))
	}

	if c.Zone.ClockIntervalMillis <= 0 {
		result = multierror.Append(result, errors.New("ZONE_CLOCK_INTERVAL_MILLIS must be positive"))
	}

	return result.ErrorOrNil()
}
