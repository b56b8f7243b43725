// Package config provides configuration management for the catalog service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	IdempotencyTTL  time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	APIKeys         []string
}

// CatalogConfig holds the catalog source and storefront settings.
type CatalogConfig struct {
	// File is a JSON product list. Empty serves the built-in catalog.
	File            string
	WhatsAppPhone   string
	MinimumPurchase decimal.Decimal
}

// SessionConfig bounds the in-memory order sessions.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// DatabaseConfig holds MongoDB configuration for the export log.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// ExportsTTLDays expires export log entries. 0 keeps them forever.
	ExportsTTLDays   int
	ExportLogTimeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads .env from the working directory, if present, and then builds
// a Config from environment variables. Variables already set win over .env.
func Load() Config {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(path string) Config {
	_ = godotenv.Load(path)
	return FromEnv()
}

// FromEnv creates a Config from environment variables only.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			IdempotencyTTL:  getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
			APIKeys:         parseList(os.Getenv("API_KEYS")),
		},
		Catalog: CatalogConfig{
			File:            getEnv("CATALOG_FILE", ""),
			WhatsAppPhone:   getEnv("WHATSAPP_PHONE", "59891284128"),
			MinimumPurchase: getEnvDecimal("MIN_PURCHASE", decimal.NewFromInt(20000)),
		},
		Session: SessionConfig{
			Capacity: getEnvInt("SESSION_CAPACITY", 1000),
			TTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "catalog_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			ExportsTTLDays:                 getEnvInt("MONGODB_EXPORTS_TTL", 90),
			ExportLogTimeout:               getEnvDuration("EXPORT_LOG_TIMEOUT", 2*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvDecimal rejects negative amounts.
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil && !d.IsNegative() {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseList(s)...)
}
