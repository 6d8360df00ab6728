package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DataSourceMock  = "mock"
	DataSourceMySQL = "mysql"
)

type Env struct {
	AppAddr    string
	AppEnv     string
	GinMode    string
	LogLevel   string
	DataSource string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	CORSAllowedOrigins []string
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:    getEnv("APP_ADDR", ":8080"),
		AppEnv:     getEnv("APP_ENV", "production"),
		GinMode:    getEnv("GIN_MODE", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", DataSourceMock)),

		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getEnv("DB_NAME", "reseller_console"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
