package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_NAME", "GEMINI_MODEL", "GEMINI_TIMEOUT", "MINIO_ENDPOINT", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5174", cfg.Server.AllowOrigins)
	assert.Equal(t, "movie_feels", cfg.Database.DBName)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("MINIO_USE_SSL", "false")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "complete",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing db host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "DB_HOST",
		},
		{
			name:    "missing gemini key",
			mutate:  func(c *Config) { c.Gemini.APIKey = "" },
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "minio endpoint without credentials",
			mutate:  func(c *Config) { c.MinIO.Endpoint = "minio:9000"; c.MinIO.SecretAccessKey = "" },
			wantErr: "MINIO_SECRET_ACCESS_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{Host: "localhost"},
				Gemini:   GeminiConfig{APIKey: "key"},
				MinIO:    MinIOConfig{AccessKeyID: "id"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
