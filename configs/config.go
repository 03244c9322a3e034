package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	BaseURL   string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr string
	CartTTL   time.Duration

	KafkaBroker string // empty disables event publishing
	KafkaTopic  string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "germanchai.db"),
		Port:          getEnv("PORT", "8000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		CartTTL:       7 * 24 * time.Hour,
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "germanchai.orders"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
