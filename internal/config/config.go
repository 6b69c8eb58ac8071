package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Event limits
	MaxTeamsPerSession     int `mapstructure:"MAX_TEAMS_PER_SESSION"`
	MaxPinnedAnnouncements int `mapstructure:"MAX_PINNED_ANNOUNCEMENTS"`

	// Scoreboard
	BoardFetchConcurrency int `mapstructure:"BOARD_FETCH_CONCURRENCY"`
	BoardCacheTTLSeconds  int `mapstructure:"BOARD_CACHE_TTL_SECONDS"`

	// Session cookie
	SessionCookieName       string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieMaxAgeDays int    `mapstructure:"SESSION_COOKIE_MAX_AGE_DAYS"`

	// Tracing
	TracingEnabled     bool    `mapstructure:"TRACING_ENABLED"`
	TracingSampleRatio float64 `mapstructure:"TRACING_SAMPLE_RATIO"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "vibetracker")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("MAX_TEAMS_PER_SESSION", 20)
	viper.SetDefault("MAX_PINNED_ANNOUNCEMENTS", 4)

	viper.SetDefault("BOARD_FETCH_CONCURRENCY", 8)
	viper.SetDefault("BOARD_CACHE_TTL_SECONDS", 5)

	viper.SetDefault("SESSION_COOKIE_NAME", "vt_session")
	viper.SetDefault("SESSION_COOKIE_MAX_AGE_DAYS", 30)

	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.MaxTeamsPerSession < 1 {
		return fmt.Errorf("MAX_TEAMS_PER_SESSION must be positive")
	}
	if config.MaxPinnedAnnouncements < 0 {
		return fmt.Errorf("MAX_PINNED_ANNOUNCEMENTS must not be negative")
	}
	if config.BoardFetchConcurrency < 1 {
		return fmt.Errorf("BOARD_FETCH_CONCURRENCY must be positive")
	}
	if config.SessionCookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if config.TracingSampleRatio < 0 || config.TracingSampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}
	if config.IsProduction() && config.DatabaseSSLMode == "disable" {
		return fmt.Errorf("DB_SSL_MODE must not be disable in production")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
