// Package config provides configuration management for the userdata tool.
// Values come from centralized defaults, an optional YAML file and the
// PERSONAL_DATA_DB_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
)

// ErrMissingDatabaseName is returned when no database name is configured.
var ErrMissingDatabaseName = errors.New("database name is required (set " + constants.EnvDBName + ")")

// Defaults contains all default configuration values
// centralized in one place to avoid hardcoded literals
var Defaults = struct {
	Database struct {
		Connection   string
		User         string
		Password     string
		Host         string
		QueryTimeout int
	}
	Logging struct {
		Level      string
		ProductTag string
	}
}{
	Database: struct {
		Connection   string
		User         string
		Password     string
		Host         string
		QueryTimeout int
	}{
		Connection:   "mysql",
		User:         "root",
		Password:     "",
		Host:         "localhost",
		QueryTimeout: int(constants.QueryTimeout.Seconds()),
	},
	Logging: struct {
		Level      string
		ProductTag string
	}{
		Level:      "info",
		ProductTag: constants.ProductTag,
	},
}

// AppConfig is the root configuration
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig describes how to reach the database holding the users table
type DatabaseConfig struct {
	Connection   string `mapstructure:"connection"`    // database type: mysql, postgres, sqlite
	Database     string `mapstructure:"database"`      // database name (file path for sqlite)
	User         string `mapstructure:"user"`          // database user
	Password     string `mapstructure:"password"`      // database password
	Host         string `mapstructure:"host"`          // database host, optionally host:port
	QueryTimeout int    `mapstructure:"query_timeout"` // query timeout in seconds
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level                     string   `mapstructure:"level"`                       // minimum level: debug, info, warn, error
	ProductTag                string   `mapstructure:"product_tag"`                 // bracketed prefix of every line
	AdditionalSensitiveFields []string `mapstructure:"additional_sensitive_fields"` // additional fields to redact
}

// Validate reports configuration that makes a connection attempt impossible.
func (c DatabaseConfig) Validate() error {
	if c.Database == "" {
		return ErrMissingDatabaseName
	}
	return nil
}

// SensitiveFields returns base followed by any additional fields, without duplicates.
func (c LoggingConfig) SensitiveFields(base []string) []string {
	seen := make(map[string]bool, len(base)+len(c.AdditionalSensitiveFields))
	fields := make([]string, 0, len(base)+len(c.AdditionalSensitiveFields))
	for _, list := range [][]string{base, c.AdditionalSensitiveFields} {
		for _, f := range list {
			f = strings.TrimSpace(f)
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			fields = append(fields, f)
		}
	}
	return fields
}

// Load reads configuration from configPath (optional) and the environment.
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("database.connection", Defaults.Database.Connection)
	v.SetDefault("database.user", Defaults.Database.User)
	v.SetDefault("database.password", Defaults.Database.Password)
	v.SetDefault("database.host", Defaults.Database.Host)
	v.SetDefault("database.query_timeout", Defaults.Database.QueryTimeout)
	v.SetDefault("logging.level", Defaults.Logging.Level)
	v.SetDefault("logging.product_tag", Defaults.Logging.ProductTag)

	bindings := map[string]string{
		"database.user":       constants.EnvDBUsername,
		"database.password":   constants.EnvDBPassword,
		"database.host":       constants.EnvDBHost,
		"database.database":   constants.EnvDBName,
		"database.connection": constants.EnvDBConnection,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate normalizes values and rejects unsupported settings. A missing
// database name is not checked here; see DatabaseConfig.Validate.
func validate(cfg *AppConfig) error {
	cfg.Database.Connection = strings.ToLower(strings.TrimSpace(cfg.Database.Connection))
	switch cfg.Database.Connection {
	case "":
		cfg.Database.Connection = Defaults.Database.Connection
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database connection: %s (must be one of: mysql, postgres, sqlite)", cfg.Database.Connection)
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = Defaults.Database.Host
	}
	if cfg.Database.QueryTimeout <= 0 {
		cfg.Database.QueryTimeout = Defaults.Database.QueryTimeout
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Defaults.Logging.Level
	}
	if cfg.Logging.ProductTag == "" {
		cfg.Logging.ProductTag = Defaults.Logging.ProductTag
	}

	return nil
}
