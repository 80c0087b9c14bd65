package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cinema-booking/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "cinema-booking", cfg.App.Name)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, int32(2), cfg.DB.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 30*time.Second, cfg.Schema.BootstrapTimeout)
	assert.Equal(t, "postgres://postgres:@localhost:5432/cinema?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/cine")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "1")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "90")
	t.Setenv("SCHEMA_BOOTSTRAP_TIMEOUT", "2m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:secret@db:5432/cine", cfg.DB.ConnectionString())
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.Equal(t, int32(1), cfg.DB.MinConns)
	assert.Equal(t, 90*time.Second, cfg.DB.MaxConnIdleTime)
	assert.Equal(t, 2*time.Minute, cfg.Schema.BootstrapTimeout)
}

func TestLoad_RejectsMinAboveMax(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "5")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapesPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5433, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5433/d?sslmode=require", c.DSN())
}
