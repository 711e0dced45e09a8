package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort      string   // Application port
	DBUser       string   // Database user
	DBPassword   string   // Database password
	DBHost       string   // Database host
	DBPort       string   // Database port
	DBName       string   // Database name
	JWTSecret    string   // JWT secret key
	GeminiAPIKey string   // Gemini API key; empty means the AI service is unconfigured
	RedisAddr    string   // Redis server address; empty disables the list cache
	RedisPass    string   // Redis password
	RedisDB      int      // Redis database number
	CORSOrigins  []string // Allowed CORS origins
	IsProd       bool     // Is production environment
}

// DSN builds the MySQL data source name.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:      os.Getenv("APP_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       os.Getenv("DB_NAME"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		CORSOrigins:  corsOrigins(),
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
