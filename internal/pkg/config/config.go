package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, cache tuning, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Cache  CacheConfig
	Jobs   JobsConfig
	CORS   CORSConfig
	Log    LogConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"staymarket.events"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

type CacheConfig struct {
	LockTTL      time.Duration `envconfig:"CACHE_LOCK_TTL" default:"10s"`
	LockRetries  int           `envconfig:"CACHE_LOCK_RETRIES" default:"5"`
	LockBackoff  time.Duration `envconfig:"CACHE_LOCK_BACKOFF" default:"50ms"`
	DefaultTTL   time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`
	PropertyTTL  time.Duration `envconfig:"CACHE_PROPERTY_TTL" default:"10m"`
	QuoteTTL     time.Duration `envconfig:"CACHE_QUOTE_TTL" default:"2m"`
	SettingsTTL  time.Duration `envconfig:"CACHE_SETTINGS_TTL" default:"1m"`
	SettingsSize int           `envconfig:"CACHE_SETTINGS_SIZE" default:"256"`
}

type JobsConfig struct {
	SuggestionSweepInterval time.Duration `envconfig:"SUGGESTION_SWEEP_INTERVAL" default:"15m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Guest-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{
			Addr: "localhost:16380",
		},
		Cache: CacheConfig{
			LockTTL:      10 * time.Second,
			LockRetries:  5,
			LockBackoff:  50 * time.Millisecond,
			DefaultTTL:   5 * time.Minute,
			PropertyTTL:  10 * time.Minute,
			QuoteTTL:     2 * time.Minute,
			SettingsTTL:  time.Minute,
			SettingsSize: 256,
		},
		Jobs: JobsConfig{
			SuggestionSweepInterval: 15 * time.Minute,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
