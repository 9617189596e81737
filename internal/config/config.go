// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// defaultJWTSecret is the development fallback signing secret. Keeping a
// fallback mirrors the original deployment; Validate refuses it in production.
const defaultJWTSecret = "your-super-secret-jwt-key-amica-network-2024"

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	DataDir        string `mapstructure:"DATA_DIR"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	Env            string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults cover
	// every key.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8081")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DataDir == "" {
		return errors.New("DATA_DIR is required")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	if isProduction {
		if c.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	} else {
		if c.JWTSecret == defaultJWTSecret {
			log.Println("WARNING: JWT_SECRET is the built-in default. Set a unique secret before exposing this server.")
		}
	}

	return nil
}
