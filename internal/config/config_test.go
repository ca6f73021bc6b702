package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "dominotrain.yaml", `
objective: length
node_budget: 100000
timeout: 2s
parallelism: 4
log_level: debug
cache:
  backend: redis
  redis_addr: cache:6379
  ttl: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "length", cfg.Objective)
	assert.Equal(t, int64(100000), cfg.NodeBudget)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr, "unset keys keep defaults")
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "config.json", `{"objective": "score", "timeout": "500ms", "http": {"addr": ":9090"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "objectve: score\n",
		"unknown objective": "objective: fastest\n",
		"bad backend":       "cache:\n  backend: memcached\n",
		"bad duration":      "timeout: soon\n",
		"negative budget":   "node_budget: -1\n",
		"negative body cap": "http:\n  max_body_bytes: -1\n",
		"malformed":         "objective: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(write(t, "c.yaml", content))
			assert.Error(t, err)
		})
	}
}

func TestForServer(t *testing.T) {
	cfg := Default().ForServer()
	assert.Equal(t, DefaultSolveTimeout, cfg.Timeout)
	assert.Equal(t, int64(DefaultNodeBudget), cfg.NodeBudget)

	own := Default()
	own.Timeout = time.Second
	own.NodeBudget = 42
	cfg = own.ForServer()
	assert.Equal(t, time.Second, cfg.Timeout, "explicit limits are kept")
	assert.Equal(t, int64(42), cfg.NodeBudget)

	off := Default()
	off.HTTP.SolveTimeout, off.HTTP.NodeBudget = 0, 0
	cfg = off.ForServer()
	assert.Zero(t, cfg.Timeout)
	assert.Zero(t, cfg.NodeBudget)
}
