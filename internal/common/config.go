package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Extractor ExtractorConfig
	Blob      BlobConfig
	Mapping   MappingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ExtractorConfig holds document-understanding service configuration
type ExtractorConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// BlobConfig holds blob store configuration
type BlobConfig struct {
	Root string
}

// MappingConfig holds engine behavior knobs
type MappingConfig struct {
	ExtractWorkers int
	ReferenceRoot  string
	MergeSuffix    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Extractor: ExtractorConfig{
			Endpoint: getEnv("EXTRACTOR_ENDPOINT", ""),
			APIKey:   getEnv("EXTRACTOR_API_KEY", ""),
			Timeout:  getEnvAsDuration("EXTRACTOR_TIMEOUT", 90*time.Second),
		},
		Blob: BlobConfig{
			Root: getEnv("BLOB_ROOT", "./blobs"),
		},
		Mapping: MappingConfig{
			ExtractWorkers: getEnvAsInt("EXTRACT_WORKERS", 4),
			ReferenceRoot:  getEnv("REFERENCE_ROOT", "."),
			MergeSuffix:    getEnv("MERGE_SUFFIX", "_ref"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extractor.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTOR_ENDPOINT is required", ErrInvalidInput)
	}
	if c.Mapping.ExtractWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
