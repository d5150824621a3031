package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// Persistence backend: "memory", "file" or "postgres"
	StoreBackend string
	DataDir      string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string

	// Shop economy tuning
	DriftRange    float64       // symmetric price drift interval around zero
	DriftInterval time.Duration // cadence of the drift ticker
	StartingMoney int           // grant for a brand-new player
	CatalogPath   string        // optional catalog JSON override; empty means built-in
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		StoreBackend: getEnv("STORE_BACKEND", DefaultStoreBackend),
		DataDir:      getEnv("DATA_DIR", DefaultDataDir),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", DefaultDBName),
		CatalogPath:  getEnv("CATALOG_PATH", ""),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	driftRange, err := getEnvFloat("DRIFT_RANGE", DefaultDriftRange)
	if err != nil {
		return nil, err
	}
	cfg.DriftRange = driftRange

	driftSeconds, err := getEnvInt("DRIFT_INTERVAL_SECONDS", DefaultDriftIntervalSeconds)
	if err != nil {
		return nil, err
	}
	cfg.DriftInterval = time.Duration(driftSeconds) * time.Second

	startingMoney, err := getEnvInt("STARTING_MONEY", DefaultStartingMoney)
	if err != nil {
		return nil, err
	}
	cfg.StartingMoney = startingMoney

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendFile, StoreBackendPostgres:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: must be one of memory, file, postgres", c.StoreBackend)
	}

	if c.DriftRange <= 0 || c.DriftRange >= 1 {
		return fmt.Errorf("invalid DRIFT_RANGE %v: must be in (0, 1)", c.DriftRange)
	}

	if c.DriftInterval <= 0 {
		return fmt.Errorf("invalid DRIFT_INTERVAL_SECONDS: must be positive")
	}

	if c.StartingMoney < 0 {
		return fmt.Errorf("invalid STARTING_MONEY %d: must not be negative", c.StartingMoney)
	}

	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvFloat retrieves a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}
