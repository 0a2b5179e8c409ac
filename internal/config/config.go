package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	ContactStorePath  string
	JWTSecret         string
	StaffEmail        string
	StaffPasswordHash string
	AppEnv            string
	EnableDocs        bool
	ContactRateLimit  int
	CORSOrigins       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		ContactStorePath:  getEnv("CONTACT_STORE_PATH", ":memory:"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		StaffEmail:        strings.TrimSpace(getEnv("STAFF_EMAIL", "")),
		StaffPasswordHash: getEnv("STAFF_PASSWORD_HASH", ""),
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "production")),
		EnableDocs:        getEnvBool("ENABLE_API_DOCS", false),
		ContactRateLimit:  getEnvInt("CONTACT_RATE_LIMIT", 5),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
	}

	if cfg.StaffEmail != "" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when STAFF_EMAIL is set")
	}
	if cfg.StaffEmail != "" && cfg.StaffPasswordHash == "" {
		return nil, fmt.Errorf("STAFF_PASSWORD_HASH is required when STAFF_EMAIL is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

// StaffEnabled reports whether the staff login and inbox should be mounted.
func (c *Config) StaffEnabled() bool {
	return c != nil && c.StaffEmail != "" && c.StaffPasswordHash != "" && c.JWTSecret != ""
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}
