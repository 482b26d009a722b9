package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
user = "stay"
dbname = "stay_booking"

[stripe]
secret_key = "sk_test_from_file"
webhook_secret = "whsec_from_file"

[auth]
session_secret = "0123456789abcdef0123456789abcdef"
admin_password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[booking]
timezone = "Australia/Sydney"
public_base_url = "https://loft.example"

[cors]
allowed_origins = ["https://loft.example"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "aud", cfg.Stripe.Currency)
	assert.Equal(t, 8*60*60, cfg.Auth.TokenTTL)
	assert.Equal(t, 30, cfg.Booking.LookupPastDays)
	assert.Equal(t, 30*60, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, []string{"https://loft.example"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "dbname=stay_booking")

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Australia/Sydney", loc.String())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvStripeSecretKey, "sk_test_from_env")
	t.Setenv(EnvDatabasePassword, "s3cret")
	t.Setenv(EnvHTTPPort, "7070")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "sk_test_from_env", cfg.Stripe.SecretKey)
	assert.Equal(t, "whsec_from_file", cfg.Stripe.WebhookSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_InvalidPortFromEnv(t *testing.T) {
	t.Setenv(EnvHTTPPort, "eighty")

	_, err := Load(writeConfig(t, testConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	short := *cfg
	short.Auth.SessionSecret = "short"
	assert.ErrorIs(t, short.Validate(), ErrInvalidConfig)

	badTZ := *cfg
	badTZ.Booking.Timezone = "Mars/Olympus"
	assert.ErrorIs(t, badTZ.Validate(), ErrInvalidConfig)

	redis := *cfg
	redis.Redis.Enabled = true
	assert.ErrorIs(t, redis.Validate(), ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestBookingConfig_AbsoluteURL(t *testing.T) {
	b := BookingConfig{PublicBaseURL: "https://stay.example.com/"}

	assert.Equal(t, "https://stay.example.com/booking/success?session_id={CHECKOUT_SESSION_ID}",
		b.AbsoluteURL("/booking/success?session_id={CHECKOUT_SESSION_ID}"))
	assert.Equal(t, "https://stay.example.com/?cancelled=true", b.AbsoluteURL("?cancelled=true"))
	assert.Equal(t, "https://pay.example.com/done", b.AbsoluteURL("https://pay.example.com/done"))
}

func TestRedisConfig_IdempotencyWindow(t *testing.T) {
	limit := 31 * time.Minute

	assert.Equal(t, limit, RedisConfig{IdempotencyTTL: 86400}.IdempotencyWindow(limit))
	assert.Equal(t, 10*time.Minute, RedisConfig{IdempotencyTTL: 600}.IdempotencyWindow(limit))
	assert.Equal(t, 24*time.Hour, RedisConfig{IdempotencyTTL: 86400}.IdempotencyWindow(0))
}
