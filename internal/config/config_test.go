package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
database:
  url: postgres://localhost/freelancehub
rating:
  like_ratio_threshold: 0.6
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 0.6, cfg.Rating.LikeRatioThreshold)
	assert.Equal(t, 0.3, cfg.Rating.CommentRatioThreshold)
	assert.Equal(t, 8, cfg.Matching.Concurrency)
	assert.Equal(t, 10, cfg.Matching.DefaultLimit)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout())
	assert.Equal(t, time.Hour, cfg.TierInterval())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/freelancehub_test")
	t.Setenv("SERVER_PORT", "4001")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := FromEnv()

	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.JWT.Secret)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.RatingCacheTTL())
}
