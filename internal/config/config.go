package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// DB
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	// Sync
	DataTables []string
	LockWait   time.Duration

	// CORS
	AllowedOrigins string
}

func Load() *Config {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load() // optional .env for local
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	lockWaitSec, err := strconv.Atoi(getEnv("LOCK_WAIT_SECONDS", "10"))
	if err != nil {
		log.Fatalf("❌ Invalid LOCK_WAIT_SECONDS: %v", err)
	}

	return &Config{
		ServerPort: port,

		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASS", "postgres"),
		DBName:    getEnv("DB_NAME", "datasync_db"),
		DBSSLMode: getEnv("DB_SSLMODE", "disable"),

		DataTables: splitTables(getEnv("DATA_TABLES", "Inventory,Orders,Menu")),
		LockWait:   time.Duration(lockWaitSec) * time.Second,

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"),
	}
}

func splitTables(raw string) []string {
	var tables []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			tables = append(tables, name)
		}
	}
	return tables
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
