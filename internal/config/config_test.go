package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "pos.db", cfg.DBDSN)
	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POS_ADDR", ":9000")
	t.Setenv("POS_DB_DRIVER", "mysql")
	t.Setenv("POS_DB_DSN", "user:pass@tcp(localhost:3306)/pos")
	t.Setenv("POS_JWT_TTL", "30m")
	t.Setenv("POS_BCRYPT_COST", "10")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/pos", cfg.DBDSN)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("POS_JWT_TTL", "soon")
	t.Setenv("POS_BCRYPT_COST", "a lot")

	cfg := Load()

	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}
