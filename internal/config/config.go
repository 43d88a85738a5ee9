package config

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the daemon configuration. Every key has a default, so the
// daemon runs without a config file; ./config/config.yml overrides them.
// There is no environment-variable binding and no CLI flags.
type Config struct {
	Bus       Bus            `mapstructure:"bus"`
	Heartbeat Heartbeat      `mapstructure:"heartbeat"`
	Server    Server         `mapstructure:"server"`
	Retry     retry.Strategy `mapstructure:"retry"` // session bus connect retries
}

// Bus holds the D-Bus related configuration.
type Bus struct {
	Name string `mapstructure:"name" validate:"required"` // well-known name to acquire
}

// Heartbeat holds the status log cadence.
type Heartbeat struct {
	Interval    time.Duration `mapstructure:"interval" validate:"required"`
	ReportEvery int           `mapstructure:"report_every" validate:"min=1"` // log stats every Nth tick
}

// Server holds the optional debug HTTP API configuration.
type Server struct {
	Enabled  bool   `mapstructure:"enabled"`
	HTTPPort string `mapstructure:"http_port" validate:"required_if=Enabled true"`
}

func setDefaults() {
	viper.SetDefault("bus.name", "org.freedesktop.Notifications")
	viper.SetDefault("heartbeat.interval", "60s")
	viper.SetDefault("heartbeat.report_every", 10)
	viper.SetDefault("server.enabled", false)
	viper.SetDefault("server.http_port", ":8765")
	viper.SetDefault("retry.attempts", 3)
	viper.SetDefault("retry.delay", "1s")
	viper.SetDefault("retry.backoff", 2)
}

// Must loads and validates the configuration.
//
// It panics if the config file is malformed or validation fails; a missing
// file is fine, defaults apply.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			zlog.Logger.Panic().Err(err).Msg("failed to read config")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msg("invalid config")
	}

	return &cfg
}
