package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	// MinReconnectInterval is the first wait before a listener reconnects after a failure
	MinReconnectInterval = time.Millisecond
	// MaxReconnectInterval is the longest wait before a listener reconnects
	MaxReconnectInterval = time.Second

	defaultConfigFile = "goledger.yml"
	defaultAMQPQueue  = "goledger_events"
)

// Config contains the settings of the goledger command
type Config struct {
	PostgresDSN string
	ConfigFile  string
	AMQPDSN     string
	AMQPQueue   string
	LogLevel    zapcore.Level

	// NotifyChannel is the postgres channel notified of every inserted event, empty disables notifications
	NotifyChannel string
}

// Load reads the configuration from the environment.
// Variables found in a .env file of the working directory are added when they are not set yet.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "failed to read .env file")
	}

	return LoadFromEnv(os.Getenv)
}

// LoadFromEnv reads the configuration using getenv to look up environment variables
func LoadFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		PostgresDSN: strings.TrimSpace(getenv("POSTGRES_DSN")),
		ConfigFile:  strings.TrimSpace(getenv("GOLEDGER_CONFIG")),
		AMQPDSN:     strings.TrimSpace(getenv("AMQP_DSN")),
		AMQPQueue:   strings.TrimSpace(getenv("AMQP_QUEUE")),
		LogLevel:    zapcore.InfoLevel,

		NotifyChannel: strings.TrimSpace(getenv("POSTGRES_NOTIFY_CHANNEL")),
	}

	if cfg.PostgresDSN == "" {
		return Config{}, errors.New("expected POSTGRES_DSN to be set and not empty")
	}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = defaultConfigFile
	}
	if cfg.AMQPQueue == "" {
		cfg.AMQPQueue = defaultAMQPQueue
	}

	if level := strings.TrimSpace(getenv("GOLEDGER_LOG_LEVEL")); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, errors.Wrap(err, "invalid GOLEDGER_LOG_LEVEL")
		}
	}

	return cfg, nil
}

// PublishEvents returns true when committed events must be published to AMQP
func (c Config) PublishEvents() bool {
	return c.AMQPDSN != ""
}
