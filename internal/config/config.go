package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the server needs. Values come from the
// environment with defaults that match a local development setup.
type Config struct {
	Addr       string
	DBDriver   string // "sqlite" or "mysql"
	DBDSN      string
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Addr:       getenv("POS_ADDR", ":8081"),
		DBDriver:   getenv("POS_DB_DRIVER", "sqlite"),
		DBDSN:      getenv("POS_DB_DSN", "pos.db"),
		JWTSecret:  getenv("POS_JWT_SECRET", "change-me-in-production"),
		JWTTTL:     getduration("POS_JWT_TTL", 8*time.Hour),
		BcryptCost: getint("POS_BCRYPT_COST", 12),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
