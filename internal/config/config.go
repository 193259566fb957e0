package config

import (
	"os"
	"strings"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	AuthSecret  string
	CORSOrigins []string
	LogLevel    string
	LogJSON     bool
}

// Load reads configuration from the environment (.env honored if present).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	secret := os.Getenv("BETTER_AUTH_SECRET")
	if secret == "" {
		logger.Fatal("BETTER_AUTH_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// !! ЧЕРЕЗ ЗАПЯТУЮ В ENV !!
	var origins []string
	originsStr := os.Getenv("CORS_ORIGINS")
	if originsStr == "" {
		originsStr = "http://localhost:3000"
	}
	for _, o := range strings.Split(originsStr, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		AuthSecret:  secret,
		CORSOrigins: origins,
		LogLevel:    logLevel,
		LogJSON:     os.Getenv("LOG_JSON") == "true",
	}
}
