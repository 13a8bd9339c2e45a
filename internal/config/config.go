package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
	Storage   StorageConfig   `koanf:"storage"`
	Style     StyleConfig     `koanf:"style"`
}

type AppConfig struct {
	Name                string `koanf:"name"`
	Version             string `koanf:"version"`
	Environment         string `koanf:"environment"`
	Timezone            string `koanf:"timezone"`
	ValidateEmailDomain bool   `koanf:"validate_email_domain"`
}

type ServerConfig struct {
	Port            string        `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver is one of postgres, mysql or sqlite. Empty URL falls back to a
	// local sqlite file.
	Driver          string        `koanf:"driver"`
	URL             string        `koanf:"url"`
	SQLitePath      string        `koanf:"sqlite_path"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RedisConfig struct {
	URL string `koanf:"url"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	Expire time.Duration `koanf:"expire"`
}

type RateLimitConfig struct {
	Requests int `koanf:"requests"`
	Burst    int `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type StorageConfig struct {
	Bucket    string `koanf:"bucket"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	PublicURL string `koanf:"public_url"`
}

type StyleConfig struct {
	MaxDimension int `koanf:"max_dimension"`
}

// Load reads defaults, then the optional YAML file, then .env and the
// process environment. Later sources win.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":                  "salon-booking",
		"app.version":               "1.0.0",
		"app.environment":           "development",
		"app.timezone":              "UTC",
		"app.validate_email_domain": false,

		"server.port":             "8080",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.shutdown_timeout": "15s",

		"database.driver":             "postgres",
		"database.sqlite_path":        "data/app.db",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "10m",

		"jwt.secret": "changeme",
		"jwt.expire": "24h",

		"rate_limit.requests": 30,
		"rate_limit.burst":    10,

		"cors.allowed_origins": []string{"*"},

		"log.level":  "info",
		"log.format": "text",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "salon-booking",

		"storage.region": "us-east-1",

		"style.max_dimension": 1024,
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"APP_ENV":               "app.environment",
	"FLASK_ENV":             "app.environment",
	"APP_TIMEZONE":          "app.timezone",
	"VALIDATE_EMAIL_DOMAIN": "app.validate_email_domain",
	"SERVER_PORT":           "server.port",
	"PORT":                  "server.port",
	"SHUTDOWN_TIMEOUT":      "server.shutdown_timeout",
	"DB_DRIVER":             "database.driver",
	"DATABASE_URL":          "database.url",
	"SQLITE_PATH":           "database.sqlite_path",
	"DB_MAX_OPEN_CONNS":     "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":     "database.max_idle_conns",
	"REDIS_URL":             "redis.url",
	"JWT_SECRET":            "jwt.secret",
	"JWT_EXPIRE":            "jwt.expire",
	"RATE_LIMIT_REQUESTS":   "rate_limit.requests",
	"RATE_LIMIT_BURST":      "rate_limit.burst",
	"LOG_LEVEL":             "log.level",
	"LOG_FORMAT":            "log.format",
	"OTEL_ENABLED":          "otel.enabled",
	"OTEL_ENDPOINT":         "otel.endpoint",
	"OTEL_SERVICE_NAME":     "otel.service_name",
	"OTEL_INSECURE":         "otel.insecure",
	"OTEL_SAMPLE_RATE":      "otel.sample_rate",
	"S3_BUCKET":             "storage.bucket",
	"S3_REGION":             "storage.region",
	"S3_ENDPOINT":           "storage.endpoint",
	"S3_ACCESS_KEY":         "storage.access_key",
	"S3_SECRET_KEY":         "storage.secret_key",
	"S3_PUBLIC_URL":         "storage.public_url",
	"STYLE_MAX_DIMENSION":   "style.max_dimension",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.IsProduction() && (c.JWT.Secret == "" || c.JWT.Secret == "changeme") {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if c.JWT.Expire <= 0 {
		return fmt.Errorf("jwt.expire must be positive")
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}
