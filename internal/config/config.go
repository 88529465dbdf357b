package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Store drivers.
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

// Drivers lists every supported remote driver.
var Drivers = []string{DriverPostgREST, DriverPostgres, DriverSQLite}

// StoreConfig holds the inputs of remote provider selection. An empty
// Endpoint is valid: the session then runs on the fallback dataset.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgrest"`
	// Endpoint is the REST base URL, the PostgreSQL DSN or the SQLite path.
	Endpoint string `yaml:"endpoint" env:"STORE_ENDPOINT"`
	// AnonKey is the public read credential of the hosted backend.
	AnonKey string `yaml:"anon_key" env:"STORE_ANON_KEY"`
	// ServiceKey is the optional elevated credential used for writes.
	ServiceKey string        `yaml:"service_key" env:"STORE_SERVICE_KEY"`
	Timeout    time.Duration `yaml:"timeout"     env:"STORE_TIMEOUT"     env-default:"8s"`
	MaxConns   int32         `yaml:"max_conns"   env:"STORE_MAX_CONNS"   env-default:"10"`
	// SeedPath replaces the embedded fallback dataset when set.
	SeedPath string `yaml:"seed_path" env:"STORE_SEED_PATH"`
}

// RequiresCredential reports whether the driver needs a separate credential.
// The SQL drivers carry credentials inside the endpoint.
func (c StoreConfig) RequiresCredential() bool {
	return c.Driver == DriverPostgREST
}

// IsKnownDriver reports whether Driver is supported.
func (c StoreConfig) IsKnownDriver() bool {
	return slices.Contains(Drivers, c.Driver)
}

// AuthConfig holds admin token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"labour-dept"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"12h"`
}

// DashboardConfig holds settings of the aggregation views.
type DashboardConfig struct {
	// Timezone decides which calendar month a complaint falls in.
	Timezone string `yaml:"timezone" env:"DASHBOARD_TIMEZONE" env-default:"Africa/Accra"`

	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits public form submissions per client IP.
type RateLimitConfig struct {
	SubmissionsPerMinute int           `yaml:"submissions_per_minute" env:"RATE_LIMIT_SUBMISSIONS_PER_MINUTE" env-default:"10"`
	CleanupInterval      time.Duration `yaml:"cleanup_interval"       env:"RATE_LIMIT_CLEANUP_INTERVAL"       env-default:"5m"`
}
