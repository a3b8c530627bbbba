package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, capacity, intervals), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Offline OfflineConfig
	Sync    SyncConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Los_Angeles"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Los_Angeles"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-28800"` // -8*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"checkin-core"`
}

// BookingConfig holds the slot and history rules of the mutation engine.
type BookingConfig struct {
	TimeZone         string `envconfig:"BOOKING_TIMEZONE" default:"America/Los_Angeles"`
	ShowerCapacity   int    `envconfig:"BOOKING_SHOWER_CAPACITY" default:"2"`
	LaundryCapacity  int    `envconfig:"BOOKING_LAUNDRY_CAPACITY" default:"2"`
	StrictRevalidate bool   `envconfig:"BOOKING_STRICT_REVALIDATION" default:"false"`
	HistoryLimit     int    `envconfig:"BOOKING_HISTORY_LIMIT" default:"50"`
}

type OfflineConfig struct {
	CachePath        string        `envconfig:"OFFLINE_CACHE_PATH" default:"checkin-cache.db"`
	FlushInterval    time.Duration `envconfig:"OFFLINE_FLUSH_INTERVAL" default:"5s"`
	LivenessInterval time.Duration `envconfig:"OFFLINE_LIVENESS_INTERVAL" default:"3s"`
	LivenessTimeout  time.Duration `envconfig:"OFFLINE_LIVENESS_TIMEOUT" default:"2s"`
}

type SyncConfig struct {
	RedisAddr      string        `envconfig:"SYNC_REDIS_ADDR" default:""`
	RedisPassword  string        `envconfig:"SYNC_REDIS_PASSWORD" default:""`
	RedisDB        int           `envconfig:"SYNC_REDIS_DB" default:"0"`
	Channel        string        `envconfig:"SYNC_CHANNEL" default:"checkin:sync"`
	ResyncInterval time.Duration `envconfig:"SYNC_RESYNC_INTERVAL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves BOOKING_TIMEZONE; date keys are computed in this zone.
func (c BookingConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Booking.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			Issuer: "checkin-core-test",
		},
		Booking: BookingConfig{
			TimeZone:        "UTC",
			ShowerCapacity:  2,
			LaundryCapacity: 2,
			HistoryLimit:    50,
		},
		Offline: OfflineConfig{
			CachePath:        ":memory:",
			FlushInterval:    50 * time.Millisecond,
			LivenessInterval: 50 * time.Millisecond,
			LivenessTimeout:  50 * time.Millisecond,
		},
		Sync: SyncConfig{
			Channel:        "checkin:sync:test",
			ResyncInterval: 50 * time.Millisecond,
		},
	}
}
