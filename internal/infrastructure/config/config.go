// Package config loads the service configuration from defaults, an optional
// config.yaml and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	Server struct {
		Port int    `mapstructure:"port"`
		Mode string `mapstructure:"mode"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Storage struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"storage"`

	AWS struct {
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		CreateTables    bool   `mapstructure:"create_tables"`
	} `mapstructure:"aws"`

	Tables struct {
		Contacts       string `mapstructure:"contacts"`
		Products       string `mapstructure:"products"`
		Taxes          string `mapstructure:"taxes"`
		Accounts       string `mapstructure:"accounts"`
		PurchaseOrders string `mapstructure:"purchase_orders"`
	} `mapstructure:"tables"`

	Seed struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"seed"`
}

// envAliases keeps the plain variable names used by the container setup
// working next to the ACCOUNTS_ prefixed ones.
var envAliases = map[string]string{
	"server.port":            "PORT",
	"server.mode":            "GIN_MODE",
	"aws.region":             "AWS_REGION",
	"aws.endpoint":           "DYNAMODB_ENDPOINT",
	"aws.access_key_id":      "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":  "AWS_SECRET_ACCESS_KEY",
	"tables.contacts":        "CONTACTS_TABLE",
	"tables.products":        "PRODUCTS_TABLE",
	"tables.taxes":           "TAXES_TABLE",
	"tables.accounts":        "ACCOUNTS_TABLE",
	"tables.purchase_orders": "PURCHASE_ORDERS_TABLE",
}

// Load builds the configuration. configFile may be empty, in which case
// config.yaml is looked up in the working directory and $HOME/.shiv-accounts.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.shiv-accounts")
	}

	v.SetEnvPrefix("ACCOUNTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		prefixed := "ACCOUNTS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return nil, fmt.Errorf("bind %s: %w", alias, err)
		}
	}

	if err := v.BindEnv("seed.enabled", "ACCOUNTS_SEED_ENABLED"); err != nil {
		return nil, fmt.Errorf("bind seed.enabled: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Seeding defaults to on only for the in-memory store.
	if !v.IsSet("seed.enabled") {
		v.Set("seed.enabled", v.GetString("storage.driver") == DriverMemory)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.driver", DriverMemory)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.create_tables", false)

	v.SetDefault("tables.contacts", "contacts")
	v.SetDefault("tables.products", "products")
	v.SetDefault("tables.taxes", "taxes")
	v.SetDefault("tables.accounts", "accounts")
	v.SetDefault("tables.purchase_orders", "purchase_orders")
}

func validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	switch cfg.Storage.Driver {
	case DriverMemory, DriverDynamoDB:
	default:
		return fmt.Errorf("invalid storage driver: %s (must be '%s' or '%s')", cfg.Storage.Driver, DriverMemory, DriverDynamoDB)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", cfg.Server.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
