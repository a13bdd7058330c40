package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the bootstrap.
type Config struct {
	Database Database `mapstructure:"database"`
	Logs     Logs     `mapstructure:"logs"`
	Logger   Logger   `mapstructure:"logger"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logs holds the location of the application log directory.
type Logs struct {
	Dir string `mapstructure:"dir"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultDSN    = "trading.db"
	DefaultLogDir = "logs"
)

// LoadConfig reads config.yml from path, if present, and applies
// environment overrides on top of the defaults.
// DATABASE_DSN overrides database.dsn, LOGS_DIR overrides logs.dir, and so on.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("database.dsn", DefaultDSN)
	v.SetDefault("logs.dir", DefaultLogDir)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	return config, nil
}
