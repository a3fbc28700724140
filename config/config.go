package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

// Config holds the settings of the service.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	MongoDB struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongodb"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Path returns the config file location, CONFIG_FILE if set.
func Path() string {
	return GetEnv("CONFIG_FILE", DefaultPath)
}

// LoadConfig applies defaults, then the file at configPath if it exists, then
// environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.MongoDB.Database = "test"
	config.Logging.Level = "info"
	config.Logging.Format = "console"
}

// loadFromEnv overrides the config with environment variables. An empty PORT
// keeps the default; an empty MONGODB_URI is taken as is.
func loadFromEnv(config *Config) {
	if uri, ok := os.LookupEnv("MONGODB_URI"); ok {
		config.MongoDB.URI = uri
	}
	config.Server.Port = GetEnv("PORT", config.Server.Port)
	config.MongoDB.Database = GetEnv("MONGODB_DATABASE", config.MongoDB.Database)
	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

func validateConfig(config *Config) error {
	port, err := strconv.Atoi(config.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", config.Server.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// GetEnv gets a non-empty environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
