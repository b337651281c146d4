package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "ilms-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.Embedded)
	assert.False(t, cfg.Mirror.Enabled())
	assert.Equal(t, time.Duration(0), cfg.Mirror.Interval)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "6543")
	v.Set("DB_EMBEDDED", "true")
	v.Set("MIRROR_DATABASE_URL", "postgres://mirror")
	v.Set("MIRROR_INTERVAL", "5m")
	v.Set("TRACE_BASE_URL", "https://ilms.example.com/trace/")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.Embedded)
	assert.True(t, cfg.Mirror.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Mirror.Interval)
	assert.Equal(t, "https://ilms.example.com/trace", cfg.Trace.BaseURL)
}

func TestFromViper_IntervalEnSegundos(t *testing.T) {
	v := viper.New()
	v.Set("MIRROR_INTERVAL", "300")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, cfg.Mirror.Interval)
}

func TestFromViper_IntervalInvalido(t *testing.T) {
	v := viper.New()
	v.Set("MIRROR_INTERVAL", "cada rato")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "ilms", Password: "p@ss:word", DBName: "ilms", SSLMode: "disable"}
	assert.Equal(t, "postgres://ilms:p%40ss%3Aword@db:5432/ilms?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
