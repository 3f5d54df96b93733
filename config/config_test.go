package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		App: AppConfig{
			Environment:  "development",
			StorageMode:  "memory",
			MockDelayMin: 200 * time.Millisecond,
			MockDelayMax: 1200 * time.Millisecond,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_BadStorageMode(t *testing.T) {
	cfg := validConfig()
	cfg.App.StorageMode = "hybrid"
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExternalNeedsBackends(t *testing.T) {
	cfg := validConfig()
	cfg.App.StorageMode = "external"
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Host = "localhost"
	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ProductionNeedsSecret(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "production"
	cfg.Auth.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "prod-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_DelayOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.App.MockDelayMin = time.Second
	cfg.App.MockDelayMax = 100 * time.Millisecond
	assert.Error(t, cfg.Validate())
}
