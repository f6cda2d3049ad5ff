package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
	ShippingFee int64
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "food_ordering.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(24) * time.Hour,
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		ShippingFee: getEnvInt64("SHIPPING_FEE", 20),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
