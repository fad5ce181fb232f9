package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigin string `yaml:"allowed_origin" env:"SERVER_ALLOWED_ORIGIN"`
	} `yaml:"server"`

	MongoDB struct {
		URI      string `yaml:"uri" env:"MONGODB_URI"`
		Database string `yaml:"database" env:"MONGODB_DATABASE"`
		PoolSize uint64 `yaml:"pool_size" env:"MONGODB_POOL_SIZE"`
	} `yaml:"mongodb"`

	Media struct {
		Endpoint      string `yaml:"endpoint" env:"MEDIA_ENDPOINT"`
		AccessKey     string `yaml:"access_key" env:"MEDIA_ACCESS_KEY"`
		SecretKey     string `yaml:"secret_key" env:"MEDIA_SECRET_KEY"`
		Bucket        string `yaml:"bucket" env:"MEDIA_BUCKET"`
		UseSSL        bool   `yaml:"use_ssl" env:"MEDIA_USE_SSL"`
		PublicBaseURL string `yaml:"public_base_url" env:"MEDIA_PUBLIC_BASE_URL"`
	} `yaml:"media"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Admin struct {
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
		Name     string `yaml:"name" env:"ADMIN_NAME"`
	} `yaml:"admin"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		ToEmail   string `yaml:"to_email" env:"SMTP_TO_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
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

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigin = "*"

	config.MongoDB.URI = "mongodb://localhost:27017"
	config.MongoDB.Database = "scholarfolio"
	config.MongoDB.PoolSize = 20

	config.Media.Endpoint = "localhost:9000"
	config.Media.Bucket = "scholarfolio-media"
	config.Media.PublicBaseURL = "http://localhost:9000"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "scholarfolio"

	config.Admin.Email = "admin@example.com"
	config.Admin.Name = "Site Admin"

	config.SMTP.Port = 587
	config.SMTP.FromName = "ScholarFolio"

	config.Logging.Level = "info"
	config.Logging.Pretty = true
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required")
	}
	if config.MongoDB.Database == "" {
		return fmt.Errorf("mongodb database is required")
	}
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}
	return nil
}

// AccessTokenExpiry returns the parsed token lifetime. validateConfig has
// already checked the format.
func (c *Config) AccessTokenExpiry() time.Duration {
	d, _ := time.ParseDuration(c.JWT.AccessTokenExpiration)
	return d
}
