package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Mood      MoodConfig      `yaml:"mood"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
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

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN,DATABASE_URL"   env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"moodjournal"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds session and password settings.
type AuthConfig struct {
	Secret           string        `yaml:"secret"             env:"AUTH_SECRET,BETTER_AUTH_SECRET" env-required:"true"`
	Issuer           string        `yaml:"issuer"             env:"AUTH_ISSUER"                    env-default:"moodjournal"`
	SessionTTL       time.Duration `yaml:"session_ttl"        env:"AUTH_SESSION_TTL"               env-default:"168h"`
	CookieName       string        `yaml:"cookie_name"        env:"AUTH_COOKIE_NAME"               env-default:"journal_session"`
	CookieSecure     bool          `yaml:"cookie_secure"      env:"AUTH_COOKIE_SECURE"             env-default:"false"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST"        env-default:"10"`
}

// Supported mood providers.
const (
	MoodProviderGemini    = "gemini"
	MoodProviderAnthropic = "anthropic"
	MoodProviderNone      = "none"
)

// MoodConfig selects and configures the mood analysis backend.
// An empty Provider resolves to gemini when an API key is present
// and to none otherwise.
type MoodConfig struct {
	Provider  string        `yaml:"provider"   env:"MOOD_PROVIDER"`
	APIKey    string        `yaml:"api_key"    env:"MOOD_API_KEY,GEMINI_API_KEY"`
	Model     string        `yaml:"model"      env:"MOOD_MODEL"`
	BaseURL   string        `yaml:"base_url"   env:"MOOD_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"MOOD_TIMEOUT"    env-default:"5s"`
	MaxTokens int64         `yaml:"max_tokens" env:"MOOD_MAX_TOKENS" env-default:"16"`
}

// RateLimitConfig controls throttling of the auth endpoints.
// When RedisURL is set the limit is shared across instances.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	RedisURL        string        `yaml:"redis_url"        env:"REDIS_URL"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether mood analysis calls should be made.
func (c MoodConfig) Enabled() bool {
	return c.Provider != "" && c.Provider != MoodProviderNone
}

// ResolvedModel returns Model or the provider's default.
func (c MoodConfig) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case MoodProviderGemini:
		return "gemini-1.5-flash"
	case MoodProviderAnthropic:
		return "claude-3-5-haiku-latest"
	}
	return ""
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
