package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8083"
	defaultCacheTTL  = 30 * time.Minute
	defaultPurgeCron = "0 0 * * *"
)

// Settings là cấu hình đọc từ biến môi trường
type Settings struct {
	Env       string
	Port      string
	JWTSecret string
	LogLevel  string
	LogDir    string
	CacheTTL  time.Duration
	PurgeCron string
}

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		return err
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault trả về fallback nếu biến môi trường rỗng
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadSettings đọc Settings, giá trị sai định dạng dùng mặc định
func LoadSettings() Settings {
	ttl := defaultCacheTTL
	if raw := os.Getenv("OVERRIDE_CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		} else {
			log.Printf("Warning: OVERRIDE_CACHE_TTL=%q không hợp lệ, dùng %s", raw, defaultCacheTTL)
		}
	}

	return Settings{
		Env:       GetEnvDefault("ENV", "dev"),
		Port:      GetEnvDefault("PORT", defaultPort),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  GetEnvDefault("LOG_LEVEL", "info"),
		LogDir:    os.Getenv("LOG_DIR"),
		CacheTTL:  ttl,
		PurgeCron: GetEnvDefault("PURGE_CRON", defaultPurgeCron),
	}
}
