package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	LawyerService LawyerServiceConfig `toml:"lawyer_service"`
	Policy        PolicyConfig        `toml:"policy"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig настройки снапшота бронирований.
// Файл загружается на старте и сохраняется при graceful shutdown.
// Пустой путь отключает снапшот - данные живут только в памяти процесса.
type StorageConfig struct {
	SnapshotFile string `toml:"snapshot_file"`
}

// LawyerServiceConfig настройки клиента каталога юристов
type LawyerServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// PolicyConfig дефолтные правила переноса сессий.
// Переопределяются per-lawyer через /lawyers/{lawyerId}/policy.
type PolicyConfig struct {
	RescheduleCutoffMinutes int     `toml:"reschedule_cutoff_minutes"`
	FeeThreshold            int     `toml:"fee_threshold"`
	FeeAmount               float64 `toml:"fee_amount"`
	SuspensionThreshold     int     `toml:"suspension_threshold"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPolicy конвертирует секцию policy в доменную модель
func (c *Config) DefaultPolicy() *domain.ReschedulePolicy {
	return &domain.ReschedulePolicy{
		CutoffMinutes:       c.Policy.RescheduleCutoffMinutes,
		FeeThreshold:        c.Policy.FeeThreshold,
		FeeAmount:           c.Policy.FeeAmount,
		SuspensionThreshold: c.Policy.SuspensionThreshold,
	}
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "lm-booking-service",
			Path:        "/metrics",
		},
		Policy: PolicyConfig{
			RescheduleCutoffMinutes: domain.DefaultRescheduleCutoffMinutes,
			FeeThreshold:            domain.DefaultRescheduleFeeThreshold,
			FeeAmount:               domain.DefaultRescheduleFeeAmount,
			SuspensionThreshold:     domain.DefaultSuspensionThreshold,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}

	if c.Policy.RescheduleCutoffMinutes < domain.MinRescheduleCutoffMinutes ||
		c.Policy.RescheduleCutoffMinutes > domain.MaxRescheduleCutoffMinutes {
		return fmt.Errorf("config: reschedule_cutoff_minutes out of range: %d", c.Policy.RescheduleCutoffMinutes)
	}

	if c.Policy.FeeThreshold < domain.MinFeeThreshold || c.Policy.FeeThreshold > domain.MaxFeeThreshold {
		return fmt.Errorf("config: fee_threshold out of range: %d", c.Policy.FeeThreshold)
	}

	if c.Policy.SuspensionThreshold < domain.MinSuspensionThreshold ||
		c.Policy.SuspensionThreshold > domain.MaxSuspensionThreshold {
		return fmt.Errorf("config: suspension_threshold out of range: %d", c.Policy.SuspensionThreshold)
	}

	if c.Policy.FeeAmount < 0 {
		return fmt.Errorf("config: fee_amount must be non-negative")
	}

	return nil
}
