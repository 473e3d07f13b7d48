package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/thassiov/challenge/internal/domain/repo"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Env     string
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// GitHubConfig holds GitHub API client configuration
type GitHubConfig struct {
	BaseURL         string
	APIVersion      string
	PageSize        int
	Timeout         int
	MaxConcurrency  int
	IncludeLastPage bool
	MaxPages        int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, so we don't return error if it doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	return LoadWithEnv(os.Getenv)
}

// LoadWithEnv builds the configuration from the given lookup function
func LoadWithEnv(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}

	config := &Config{
		Server: ServerConfig{
			Port:         e.get("SERVER_PORT", e.get("API_PORT", "8080")),
			Host:         e.get("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  e.getInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: e.getInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  e.getInt("SERVER_IDLE_TIMEOUT", 120),
		},
		GitHub: GitHubConfig{
			BaseURL:         e.get("GITHUB_BASE_URL", "https://api.github.com"),
			APIVersion:      e.get("GITHUB_API_VERSION", "2022-11-28"),
			PageSize:        e.getInt("GITHUB_PAGE_SIZE", 30),
			Timeout:         e.getInt("GITHUB_TIMEOUT", 30),
			MaxConcurrency:  e.getInt("GITHUB_MAX_CONCURRENCY", 10),
			IncludeLastPage: e.getBool("GITHUB_INCLUDE_LAST_PAGE", false),
			MaxPages:        e.getInt("GITHUB_MAX_PAGES", 1000),
		},
		Env: e.get("APP_ENV", e.get("NODE_ENV", EnvDevelopment)),
		Logging: LoggingConfig{
			Level: e.get("LOG_LEVEL", "info"),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, repo.NewError(repo.KindConfig, "configuration validation failed", nil, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("SERVER_PORT must be a number, got %q", c.Server.Port)
	}
	if c.GitHub.BaseURL == "" {
		return fmt.Errorf("GITHUB_BASE_URL is required")
	}
	if c.GitHub.PageSize < 1 || c.GitHub.PageSize > 100 {
		return fmt.Errorf("GITHUB_PAGE_SIZE must be between 1 and 100, got %d", c.GitHub.PageSize)
	}
	if c.GitHub.Timeout < 1 {
		return fmt.Errorf("GITHUB_TIMEOUT must be positive, got %d", c.GitHub.Timeout)
	}
	if c.GitHub.MaxPages < 1 {
		return fmt.Errorf("GITHUB_MAX_PAGES must be positive, got %d", c.GitHub.MaxPages)
	}
	if c.GitHub.MaxConcurrency < 0 {
		return fmt.Errorf("GITHUB_MAX_CONCURRENCY must not be negative, got %d", c.GitHub.MaxConcurrency)
	}
	return nil
}

// IsDevelopment reports whether verbose error responses should be rendered
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetGitHubTimeout returns the outbound request timeout
func (c *Config) GetGitHubTimeout() time.Duration {
	return time.Duration(c.GitHub.Timeout) * time.Second
}

type env struct {
	getenv func(string) string
}

// get gets an environment variable with a fallback value
func (e env) get(key, fallback string) string {
	if value := e.getenv(key); value != "" {
		return value
	}
	return fallback
}

// getInt gets an environment variable as integer with a fallback value
func (e env) getInt(key string, fallback int) int {
	if value := e.getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getBool gets an environment variable as boolean with a fallback value
func (e env) getBool(key string, fallback bool) bool {
	if value := e.getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}
