package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 9000

[database]
host = "localhost"
user = "postgres"
password = "from-file"
dbname = "edumanager"

[redis]
addr = "localhost:6379"

[smtp]
host = "smtp.gmail.com"
port = 465
username = "robot@example.com"

[ratelimit]
enabled = true
requests_per_minute = 3
burst = 3
trusted_proxies = ["10.0.0.0/8", "127.0.0.1"]

[seed]
admin_username = "admin"
admin_password = "admin123"

[[seed.rooms]]
name = "Phòng A101"
capacity = 40
equipment = "Máy chiếu"

[[seed.rooms]]
name = "Hội trường"
capacity = 200
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port, "default port")
	assert.Equal(t, 5, cfg.OTP.TTLMinutes, "default otp ttl")
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	require.Len(t, cfg.Seed.Rooms, 2)
	assert.Equal(t, "Phòng A101", cfg.Seed.Rooms[0].Name)
	assert.Equal(t, 200, cfg.Seed.Rooms[1].Capacity)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.RateLimit.TrustedProxies)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("SMTP_PASSWORD", "app-password")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "app-password", cfg.SMTP.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8000\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
