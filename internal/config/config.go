package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the process-level settings. Values come from the
// environment, with a .env file loaded first when present.
type Config struct {
	Port         string
	DBPath       string
	DatabaseURL  string
	SecretKey    string
	BaseCurrency string
}

// Load reads the environment into a Config. A missing .env file is not an
// error; explicit environment variables always win because godotenv never
// overrides them.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "talentai.db")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		BaseCurrency: getEnv("BASE_CURRENCY", "JPY"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
