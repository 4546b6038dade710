package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DSN         string
	JWTSecret   string
	JWTTTLHours int
	Env         string
}

func Load() *Config {
	_ = godotenv.Load()
	// 720h = 30 days, the default token validity window
	ttl, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "720"))
	if err != nil || ttl <= 0 {
		ttl = 720
	}

	c := &Config{
		Port:        getEnv("PORT", "8080"),
		DSN:         mustEnv("DB_DSN"),
		JWTSecret:   mustEnv("JWT_SECRET"),
		JWTTTLHours: ttl,
		Env:         getEnv("ENV", "dev"),
	}
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
