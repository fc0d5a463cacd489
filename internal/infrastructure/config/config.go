package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mathquiz/backend/internal/domain/child"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string

	// Quiz rules
	DailyLimit       int // answered questions per child per day
	RewardPerCorrect int
	Children         *child.Roster

	// Session cookie
	CookieName string

	// Admin
	AdminPassword   string
	AdminRatePerMin int // clear attempts per client IP per minute
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	roster, err := child.ParseRoster(getenvDefault("CHILDREN", "alleia:1,althafandra:2"))
	if err != nil {
		log.Fatalf("config: CHILDREN: %v", err)
	}

	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:           getenvDefault("DB_PATH", "math_app.sqlite3"),
		DailyLimit:       getIntDefault("DAILY_LIMIT", 400),
		RewardPerCorrect: getIntDefault("REWARD_PER_CORRECT", 50),
		Children:         roster,
		CookieName:       getenvDefault("COOKIE_NAME", "math_sess"),
		AdminPassword:    mustGetenv("ADMIN_CLEAR_PASSWORD"),
		AdminRatePerMin:  getIntDefault("ADMIN_RATE_PER_MIN", 5),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q must be a positive integer", k, v)
	}
	return n
}
