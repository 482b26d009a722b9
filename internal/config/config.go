package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Stripe    StripeConfig    `toml:"stripe"`
	Auth      AuthConfig      `toml:"auth"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	IdempotencyTTL int    `toml:"idempotency_ttl"` // секунды
}

// IdempotencyWindow сколько хранится ответ по Idempotency-Key, не дольше limit.
// limit - время жизни платежной сессии: после него сохраненная ссылка на оплату недействительна
func (r RedisConfig) IdempotencyWindow(limit time.Duration) time.Duration {
	ttl := time.Duration(r.IdempotencyTTL) * time.Second
	if limit > 0 && ttl > limit {
		return limit
	}
	return ttl
}

type StripeConfig struct {
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	Currency      string `toml:"currency"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
}

type AuthConfig struct {
	SessionSecret     string `toml:"session_secret"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	TokenTTL          int    `toml:"token_ttl"` // секунды
	Issuer            string `toml:"issuer"`
}

type BookingConfig struct {
	Timezone        string `toml:"timezone"`
	LookupPastDays  int    `toml:"lookup_past_days"`
	AvailabilityMax int    `toml:"availability_max_days"` // максимальное окно календаря
	PublicBaseURL   string `toml:"public_base_url"`
	PropertyName    string `toml:"property_name"`
	CheckoutTimeout int    `toml:"checkout_timeout"` // секунды, таймаут клиента bookingapi
}

// AbsoluteURL достраивает относительный путь до адреса сайта. Абсолютные URL не меняются
func (b BookingConfig) AbsoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(b.PublicBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Location часовой пояс объекта, от него считается "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Переменные окружения с секретами, переопределяют значения из файла
const (
	EnvStripeSecretKey     = "STRIPE_SECRET_KEY"
	EnvStripeWebhookSecret = "STRIPE_WEBHOOK_SECRET"
	EnvAdminSessionSecret  = "ADMIN_SESSION_SECRET"
	EnvAdminPasswordHash   = "ADMIN_PASSWORD_HASH"
	EnvDatabasePassword    = "DATABASE_PASSWORD"
	EnvRedisPassword       = "REDIS_PASSWORD"
	EnvHTTPPort            = "HTTP_PORT"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load читает .env (если есть), TOML-файл, переменные окружения, затем подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvStripeSecretKey:     &c.Stripe.SecretKey,
		EnvStripeWebhookSecret: &c.Stripe.WebhookSecret,
		EnvAdminSessionSecret:  &c.Auth.SessionSecret,
		EnvAdminPasswordHash:   &c.Auth.AdminPasswordHash,
		EnvDatabasePassword:    &c.Database.Password,
		EnvRedisPassword:       &c.Redis.Password,
	}
	for env, target := range overrides {
		if value, ok := os.LookupEnv(env); ok && value != "" {
			*target = value
		}
	}

	if value, ok := os.LookupEnv(EnvHTTPPort); ok && value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, value)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

func (c *Config) applyDefaults() {
	setInt := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	setString := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}

	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 15)

	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 10)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "stay-booking")

	setInt(&c.Redis.IdempotencyTTL, 30*60)

	setString(&c.Stripe.Currency, "aud")
	setString(&c.Stripe.SuccessURL, "/booking/success?session_id={CHECKOUT_SESSION_ID}")
	setString(&c.Stripe.CancelURL, "/?cancelled=true")

	setInt(&c.Auth.TokenTTL, 8*60*60)
	setString(&c.Auth.Issuer, "stay-booking")

	setString(&c.Booking.Timezone, "UTC")
	setInt(&c.Booking.LookupPastDays, 30)
	setInt(&c.Booking.AvailabilityMax, 731)
	setInt(&c.Booking.CheckoutTimeout, 15)
	setString(&c.Booking.PropertyName, "Stay")

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 1
	}
	setInt(&c.RateLimit.Burst, 5)
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns exceeds max_open_conns", ErrInvalidConfig)
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("%w: stripe secret key is required (%s)", ErrInvalidConfig, EnvStripeSecretKey)
	}
	if c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("%w: stripe webhook secret is required (%s)", ErrInvalidConfig, EnvStripeWebhookSecret)
	}
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("%w: admin session secret must be at least 32 characters (%s)", ErrInvalidConfig, EnvAdminSessionSecret)
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("%w: admin password hash is required (%s)", ErrInvalidConfig, EnvAdminPasswordHash)
	}
	if c.Booking.PublicBaseURL == "" {
		return fmt.Errorf("%w: booking.public_base_url is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: ratelimit values must not be negative", ErrInvalidConfig)
	}
	return nil
}
