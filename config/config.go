package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string
	LogLevel  string
	DB        DBConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	// MaxOpenConns bounds the connection pool; acquisition beyond the
	// bound queues on the pool rather than failing fast.
	MaxOpenConns int
}

// LoadConfig reads configuration from the environment, optionally seeded
// from a .env file. JWT_SECRET has no default: running without one would
// mean every deployment signs tokens with the same known key.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: secret,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			DBName:       getEnv("DB_NAME", "savr"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		},
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return n
}
