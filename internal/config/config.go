// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Workflow WorkflowConfig
}

type ServerConfig struct {
	GRPCPort         string
	Environment      string
	AutoMigrate      bool
	EnableReflection bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	AccessSecret string
	Issuer       string
}

type WorkflowConfig struct {
	// DeleteConfirmationTTL bounds how long a requested schedule
	// deletion stays confirmable.
	DeleteConfirmationTTL time.Duration
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			GRPCPort:         getEnv("GRPC_PORT", "50051"),
			Environment:      getEnv("ENVIRONMENT", "development"),
			AutoMigrate:      getEnvAsBool("AUTO_MIGRATE", true),
			EnableReflection: getEnvAsBool("ENABLE_REFLECTION", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "sitemaster"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			AccessSecret: getEnv("JWT_ACCESS_SECRET", "dev-access-secret-change-in-production"),
			Issuer:       getEnv("JWT_ISSUER", "sitemaster"),
		},
		Workflow: WorkflowConfig{
			DeleteConfirmationTTL: getEnvAsDuration("DELETE_CONFIRMATION_TTL", 5*time.Minute),
		},
	}, nil
}

// ValidateConfig rejects configurations that cannot serve requests.
func (c *Config) ValidateConfig() error {
	if c.Server.GRPCPort == "" {
		return fmt.Errorf("GRPC_PORT must not be empty")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host and name must be configured")
	}
	if c.Workflow.DeleteConfirmationTTL <= 0 {
		return fmt.Errorf("DELETE_CONFIRMATION_TTL must be positive")
	}
	if c.IsProduction() && c.JWT.AccessSecret == "dev-access-secret-change-in-production" {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
