package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// DBConfig holds database configuration. The annotation database is an
// in-memory SQLite instance by default, so it lives and dies with the process.
type DBConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	Env         string
	FrontendDir string
}

// CorpusConfig holds supplier corpus configuration
type CorpusConfig struct {
	SupplierCount int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	DB          DBConfig
	Server      ServerConfig
	Corpus      CorpusConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from the .env file and environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", "file::memory:?cache=shared"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			// Zero keeps connections forever; recycling the only connection
			// of an in-memory SQLite database would drop its contents.
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 0),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3000"),
			Env:         getEnv("APP_ENV", "development"),
			FrontendDir: getEnv("FRONTEND_DIR", ""),
		},
		Corpus: CorpusConfig{
			SupplierCount: getEnvAsInt("SUPPLIER_COUNT", 5000),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
	}

	if config.Corpus.SupplierCount <= 0 {
		return nil, fmt.Errorf("SUPPLIER_COUNT must be positive, got %d", config.Corpus.SupplierCount)
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.Int("supplier_count", c.Corpus.SupplierCount),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as log levels
func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	valueStr := getEnv(key, "")
	switch valueStr {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
