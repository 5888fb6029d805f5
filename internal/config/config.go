package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	ServerPort        string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	GoogleClientID    string
	SuperadminEmails  []string
	PublicMenuBaseURL string
	TranslateURL      string
}

// Load builds Config from environment with sensible defaults. A .env file is
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/qarta?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		SuperadminEmails:  splitEmails(os.Getenv("SUPERADMIN_EMAILS")),
		PublicMenuBaseURL: getEnv("PUBLIC_MENU_BASE_URL", "https://qarta.xyzdigital.es"),
		TranslateURL:      getEnv("TRANSLATE_URL", "https://libretranslate.de/translate"),
	}

	if cfg.JWTSecret == "dev-secret" && cfg.IsProduction() {
		log.Println("WARNING: JWT_SECRET is unset in production, using the development default")
	}

	return cfg
}

// IsProduction reports whether the process runs with a production environment tag.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DevAuthEnabled reports whether the development login bypass may be exposed.
// It is never reachable in production deployments.
func (c *Config) DevAuthEnabled() bool {
	return !c.IsProduction()
}

func splitEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.ToLower(strings.TrimSpace(part)); v != "" {
			emails = append(emails, v)
		}
	}
	return emails
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
