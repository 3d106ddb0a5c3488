package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// Переменные окружения
const (
	EnvConfigPath = "CONFIG_PATH"
	EnvDBPassword = "DB_PASSWORD"
)

// DefaultPath путь к конфигурации по умолчанию
const DefaultPath = "config.toml"

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	MaxActiveReservations   int    `toml:"max_active_reservations"`
	MaxSpanDays             int    `toml:"max_span_days"`
	MinLeadMinutes          int    `toml:"min_lead_minutes"`
	CancellationLeadMinutes int    `toml:"cancellation_lead_minutes"`
	Timezone                string `toml:"timezone"`
	// PolicyFile файл с переопределением правил, перечитывается при изменении
	PolicyFile       string `toml:"policy_file"`
	ReloadDebounceMs int    `toml:"reload_debounce_ms"`
}

// SchedulerConfig настройки фонового завершения бронирований
type SchedulerConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
}

// Load загружает конфигурацию из файла
// Путь из CONFIG_PATH имеет приоритет над path
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if pwd := os.Getenv(EnvDBPassword); pwd != "" {
		cfg.Database.Password = pwd
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "oven_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "oven_booking",
		},
		Booking: BookingConfig{
			MaxActiveReservations:   domain.DefaultMaxActiveReservations,
			MaxSpanDays:             domain.DefaultMaxReservationSpanDays,
			MinLeadMinutes:          int(domain.DefaultMinLeadTime / time.Minute),
			CancellationLeadMinutes: int(domain.DefaultCancellationLeadTime / time.Minute),
			Timezone:                "UTC",
			ReloadDebounceMs:        200,
		},
		Scheduler: SchedulerConfig{
			Enabled:  true,
			Schedule: "*/5 * * * *",
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	if c.Booking.ReloadDebounceMs < 0 {
		return fmt.Errorf("booking.reload_debounce_ms must be >= 0")
	}

	if _, err := c.Booking.ToPolicy(); err != nil {
		return fmt.Errorf("booking: %w", err)
	}
	return nil
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ToPolicy собирает правила бронирования
func (b BookingConfig) ToPolicy() (domain.ValidationPolicy, error) {
	loc := time.UTC
	if b.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(b.Timezone)
		if err != nil {
			return domain.ValidationPolicy{}, fmt.Errorf("unknown timezone %q: %w", b.Timezone, err)
		}
	}

	policy := domain.ValidationPolicy{
		MaxActiveReservationsPerRequester: b.MaxActiveReservations,
		MaxReservationSpanDays:            b.MaxSpanDays,
		MinLeadTime:                       time.Duration(b.MinLeadMinutes) * time.Minute,
		CancellationLeadTime:              time.Duration(b.CancellationLeadMinutes) * time.Minute,
		Location:                          loc,
		Mode:                              domain.ModeCreate,
	}
	if err := policy.Validate(); err != nil {
		return domain.ValidationPolicy{}, err
	}
	return policy, nil
}

// ReloadDebounce интервал подавления повторных перечитываний файла правил
func (b BookingConfig) ReloadDebounce() time.Duration {
	return time.Duration(b.ReloadDebounceMs) * time.Millisecond
}
