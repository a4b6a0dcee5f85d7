package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMySQL    = "mysql"
	StorageDriverMemory   = "memory"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"prod"`

	ListenAddress  string   `default:":8081" split_words:"true"`
	AllowedOrigins []string `default:"http://*,https://*" split_words:"true"`

	StorageDriver string `default:"postgres" split_words:"true"`
	PostgresDSN   string `default:"" split_words:"true"`
	MySQLDSN      string `default:"" envconfig:"MYSQL_DSN"`

	DefaultPageSize int `default:"10" split_words:"true"`
	MaxPageSize     int `default:"200" split_words:"true"`

	SummaryRefreshInterval time.Duration `default:"1m" split_words:"true"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "prod"
}

// Validate checks the configuration for values the application cannot start with
func (config *Config) Validate() error {
	switch config.StorageDriver {
	case StorageDriverPostgres:
		if config.PostgresDSN == "" {
			return fmt.Errorf("storage driver %q requires ROUTE_POSTGRES_DSN to be set", config.StorageDriver)
		}
	case StorageDriverMySQL:
		if config.MySQLDSN == "" {
			return fmt.Errorf("storage driver %q requires ROUTE_MYSQL_DSN to be set", config.StorageDriver)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}
	if config.DefaultPageSize < 1 || config.MaxPageSize < config.DefaultPageSize {
		return fmt.Errorf("invalid page sizes (default %d, max %d)", config.DefaultPageSize, config.MaxPageSize)
	}
	return nil
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("route", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
