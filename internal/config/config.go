// internal/config/config.go
// Configuration management using environment variables and optional config files

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"badminton-court-engine/internal/engine"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Engine      EngineConfig
	Features    FeatureFlags
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	FrontendURL  string
}

// DatabaseConfig contains all database connection settings
type DatabaseConfig struct {
	MySQL   MySQLConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
}

// MySQLConfig contains MySQL-specific settings. MySQL is the system of
// record for rosters and sessions.
type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MongoDBConfig contains MongoDB-specific settings. Mongo holds the
// append-only round archive — never read back by the cost function.
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig contains Redis-specific settings. Redis backs the
// StateSnapshot cache and the rate limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig contains authentication and authorization settings for
// organizer-gated operations (resetHistory, loadState, force-bench).
type AuthConfig struct {
	JWTSecret          string
	JWTExpiration      time.Duration
	RefreshTokenExpiry time.Duration
	BCryptCost         int
}

// EngineConfig configures the default engine.Options used for new sessions
// unless a session overrides them at creation time.
type EngineConfig struct {
	Variant      engine.VariantType
	MCSamples    int
	SAIterations int
	SAT0         float64
	SADecay      float64
	SAFloor      float64
	Weights      engine.CostWeights
}

// FeatureFlags allows toggling features without code changes
type FeatureFlags struct {
	EnableWebSocket     bool
	EnableRoundArchive  bool
	MaintenanceMode     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second),
			FrontendURL:  getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			MySQL: MySQLConfig{
				DSN:             getEnvOrDefault("MYSQL_DSN", ""),
				MaxOpenConns:    getIntOrDefault("MYSQL_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getIntOrDefault("MYSQL_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getDurationOrDefault("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute),
			},
			MongoDB: MongoDBConfig{
				URI:      getEnvOrDefault("MONGO_URI", ""),
				Database: getEnvOrDefault("MONGO_DATABASE", "badminton_court_engine"),
			},
			Redis: RedisConfig{
				Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getIntOrDefault("REDIS_DB", 0),
			},
		},
		Auth: AuthConfig{
			JWTSecret:          getEnvOrDefault("JWT_SECRET", ""),
			JWTExpiration:      getDurationOrDefault("JWT_EXPIRATION", 15*time.Minute),
			RefreshTokenExpiry: getDurationOrDefault("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
			BCryptCost:         getIntOrDefault("BCRYPT_COST", 10),
		},
		Engine: EngineConfig{
			Variant:      engine.VariantType(getEnvOrDefault("ENGINE_VARIANT", string(engine.VariantSimulatedAnnealing))),
			MCSamples:    getIntOrDefault("ENGINE_MC_SAMPLES", 300),
			SAIterations: getIntOrDefault("ENGINE_SA_ITERATIONS", 5000),
			SAT0:         getFloatOrDefault("ENGINE_SA_T0", 10),
			SADecay:      getFloatOrDefault("ENGINE_SA_DECAY", 0.999),
			SAFloor:      getFloatOrDefault("ENGINE_SA_FLOOR", 0.01),
			Weights: engine.CostWeights{
				Teammate: getFloatOrDefault("ENGINE_WEIGHT_TEAMMATE", 1),
				Opponent: getFloatOrDefault("ENGINE_WEIGHT_OPPONENT", 1),
				Skill:    getFloatOrDefault("ENGINE_WEIGHT_SKILL", 1),
			},
		},
		Features: FeatureFlags{
			EnableWebSocket:    getBoolOrDefault("ENABLE_WEBSOCKET", true),
			EnableRoundArchive: getBoolOrDefault("ENABLE_ROUND_ARCHIVE", true),
			MaintenanceMode:    getBoolOrDefault("MAINTENANCE_MODE", false),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.Database.MySQL.DSN == "" {
		return fmt.Errorf("MYSQL_DSN is required")
	}
	if c.Database.MongoDB.URI == "" && c.Features.EnableRoundArchive {
		return fmt.Errorf("MONGO_URI is required when round archiving is enabled")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Engine.Variant {
	case engine.VariantMonteCarlo, engine.VariantSimulatedAnnealing, engine.VariantConflictGreedy:
	default:
		return fmt.Errorf("ENGINE_VARIANT must be one of mc, sa, cg")
	}
	return nil
}

// ToEngineOptions converts the loaded engine configuration into
// engine.Options, leaving RNGSeed unset for production time-based seeding.
func (c EngineConfig) ToEngineOptions() engine.Options {
	return engine.Options{
		Variant:      c.Variant,
		MCSamples:    c.MCSamples,
		SAIterations: c.SAIterations,
		SAT0:         c.SAT0,
		SADecay:      c.SADecay,
		SAFloor:      c.SAFloor,
		CostWeights:  c.Weights,
	}
}

// Helper functions to read environment variables with defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
