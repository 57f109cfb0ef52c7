package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBPassword = "SLOTBOOKING_DB_PASSWORD"
	EnvHTTPPort   = "SLOTBOOKING_HTTP_PORT"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Storage  StorageConfig   `toml:"storage"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Booking  BookingConfig   `toml:"booking"`
	Accounts []AccountConfig `toml:"accounts"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

type StorageConfig struct {
	Driver string `toml:"driver"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type BookingConfig struct {
	// StrictSlotValidation запрещает запись на время, которого нет среди предлагаемых слотов
	StrictSlotValidation *bool `toml:"strict_slot_validation"`
	// DefaultConfigFallback использовать значения по умолчанию, пока исполнитель не сохранил расписание
	DefaultConfigFallback *bool `toml:"default_config_fallback"`
	// Location часовой пояс, в котором считается "сегодня"
	Location string `toml:"location"`
}

// Strict значение strict_slot_validation с учётом умолчания
func (b BookingConfig) Strict() bool {
	return b.StrictSlotValidation == nil || *b.StrictSlotValidation
}

// Fallback значение default_config_fallback с учётом умолчания
func (b BookingConfig) Fallback() bool {
	return b.DefaultConfigFallback == nil || *b.DefaultConfigFallback
}

// LoadLocation разбирает Location, пустое значение - UTC
func (b BookingConfig) LoadLocation() (*time.Location, error) {
	if b.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Location)
}

// AccountConfig аккаунт, который создаётся при старте
type AccountConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

// ToDomain конвертирует в доменную модель
func (a AccountConfig) ToDomain() *domain.Account {
	return &domain.Account{
		Name:  strings.TrimSpace(a.Name),
		Email: strings.TrimSpace(a.Email),
		Role:  domain.Role(a.Role),
	}
}

// Load читает конфигурацию из файла, применяет умолчания и переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverPostgres
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "slot_booking"
	}
}

func (c *Config) applyEnv() error {
	if password, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = password
	}

	if portStr, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, portStr)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host, database.user and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := c.Booking.LoadLocation(); err != nil {
		return fmt.Errorf("%w: booking.location: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Accounts))
	for i, acc := range c.Accounts {
		a := acc.ToDomain()
		if a.Email == "" || a.Name == "" {
			return fmt.Errorf("%w: accounts[%d]: name and email are required", ErrInvalidConfig, i)
		}
		if !a.Role.Valid() {
			return fmt.Errorf("%w: accounts[%d]: unknown role %q", ErrInvalidConfig, i, acc.Role)
		}
		key := strings.ToLower(a.Email)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: accounts[%d]: duplicate email %s", ErrInvalidConfig, i, a.Email)
		}
		seen[key] = struct{}{}
	}

	return nil
}
