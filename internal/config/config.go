package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если обязательные параметры не заданы
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Session   SessionConfig   `toml:"session"`
	OTP       OTPConfig       `toml:"otp"`
	Security  SecurityConfig  `toml:"security"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Seed      SeedConfig      `toml:"seed"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SMTPConfig параметры почтового сервера (SMTP over TLS)
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	Timeout  int    `toml:"timeout"`
}

// SessionConfig параметры сессий
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	TTLMinutes int    `toml:"ttl_minutes"`
	Secure     bool   `toml:"secure"`
}

// OTPConfig параметры одноразовых кодов
type OTPConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// SecurityConfig параметры хеширования паролей
type SecurityConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

// RateLimitConfig ограничение частоты запросов на отправку OTP (на один IP)
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
	// Адреса или подсети обратных прокси, которым разрешено передавать X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies"`
}

// SeedConfig начальные данные, создаваемые при старте
type SeedConfig struct {
	AdminUsername string     `toml:"admin_username"`
	AdminPassword string     `toml:"admin_password"`
	AdminFullName string     `toml:"admin_full_name"`
	AdminEmail    string     `toml:"admin_email"`
	AdminPhone    string     `toml:"admin_phone"`
	Rooms         []SeedRoom `toml:"rooms"`
}

// SeedRoom комната по умолчанию
type SeedRoom struct {
	Name      string `toml:"name"`
	Capacity  int    `toml:"capacity"`
	Equipment string `toml:"equipment"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением загружается .env (если есть); секреты переопределяются переменными окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required", ErrInvalidConfig)
	}
	if c.SMTP.Host == "" || c.SMTP.Port <= 0 {
		return fmt.Errorf("%w: smtp.host and smtp.port are required", ErrInvalidConfig)
	}
	if c.Session.TTLMinutes <= 0 || c.OTP.TTLMinutes <= 0 {
		return fmt.Errorf("%w: session.ttl_minutes and otp.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Seed.AdminUsername == "" || c.Seed.AdminPassword == "" {
		return fmt.Errorf("%w: seed.admin_username and seed.admin_password are required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit requires positive requests_per_minute and burst", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		SMTP: SMTPConfig{
			Port:    465,
			Timeout: 10,
		},
		Session: SessionConfig{
			CookieName: "session_id",
			TTLMinutes: 24 * 60,
		},
		OTP: OTPConfig{
			TTLMinutes: 5,
		},
		Security: SecurityConfig{
			BcryptCost: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "edumanager-booking",
		},
	}
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideInt(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Database.User, "DB_USER")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.DBName, "DB_NAME")
	overrideString(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideString(&cfg.SMTP.Username, "SMTP_USERNAME")
	overrideString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	overrideString(&cfg.SMTP.From, "SMTP_FROM")
	overrideString(&cfg.Seed.AdminPassword, "ADMIN_PASSWORD")
	overrideString(&cfg.Logs.Level, "LOG_LEVEL")
	overrideInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
