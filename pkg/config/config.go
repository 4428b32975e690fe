package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	CORS          CORSConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Redis         RedisConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PRINTVENTORY_APP_ENV" default:"dev"`
	Port         string `envconfig:"PRINTVENTORY_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"PRINTVENTORY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PRINTVENTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path points at the SQLite database file backing all six tables.
	Path string `envconfig:"PRINTVENTORY_DB_PATH" default:"inventory.db"`

	MaxOpenConns    int           `envconfig:"PRINTVENTORY_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"PRINTVENTORY_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"PRINTVENTORY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PRINTVENTORY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PRINTVENTORY_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PRINTVENTORY_JWT_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"PRINTVENTORY_JWT_ISSUER" default:"printventory"`
	ExpirationMinutes int    `envconfig:"PRINTVENTORY_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PRINTVENTORY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PRINTVENTORY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PRINTVENTORY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PRINTVENTORY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PRINTVENTORY_ARGON_KEY_LEN" default:"32"`
}

type RedisConfig struct {
	// URL is optional; auth rate limiting is skipped when it is empty.
	URL          string        `envconfig:"PRINTVENTORY_REDIS_URL"`
	PoolSize     int           `envconfig:"PRINTVENTORY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PRINTVENTORY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PRINTVENTORY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PRINTVENTORY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PRINTVENTORY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit    int           `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUsernameLimit int           `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_REGISTER_USERNAME_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"PRINTVENTORY_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PRINTVENTORY_AUTO_MIGRATE" default:"false"`
}
