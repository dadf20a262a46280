package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Environment     string
	ServerPort      string
	RosterBackend   string
	RosterFile      string
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	AllowOrigins    []string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, after pulling in a .env
// file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		ServerPort:      getEnv("PORT", "8080"),
		RosterBackend:   strings.ToLower(getEnv("ROSTER_BACKEND", BackendFile)),
		RosterFile:      getEnv("ROSTER_FILE", "data/students.json"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnvInt("DB_PORT", 5432),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "attendance"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.RosterBackend {
	case BackendFile:
		if strings.TrimSpace(c.RosterFile) == "" {
			return fmt.Errorf("ROSTER_FILE is required for the %s backend", BackendFile)
		}
	case BackendPostgres:
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD environment variable is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown ROSTER_BACKEND %q", c.RosterBackend)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) AllowAllOrigins() bool {
	return len(c.AllowOrigins) == 0 || (len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
