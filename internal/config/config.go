// Package config loads solver settings from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "dominotrain.yaml"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheFile   = "file"
	CacheRedis  = "redis"
)

// Config holds every tunable of the CLI and servers.
type Config struct {
	Objective   string        `yaml:"objective" json:"objective"`
	NodeBudget  int64         `yaml:"node_budget" json:"node_budget"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	Parallelism int           `yaml:"parallelism" json:"parallelism"`
	// PoolSize is the required pool size; 0 accepts any and the length
	// objective falls back to domain.LengthPoolSize.
	PoolSize int         `yaml:"pool_size" json:"pool_size"`
	LogLevel string      `yaml:"log_level" json:"log_level"`
	Library  string      `yaml:"library" json:"library"`
	Cache    CacheConfig `yaml:"cache" json:"cache"`
	HTTP     HTTPConfig  `yaml:"http" json:"http"`
}

// CacheConfig selects and configures the result store.
type CacheConfig struct {
	Backend       string        `yaml:"backend" json:"backend"`
	Dir           string        `yaml:"dir" json:"dir"`
	RedisAddr     string        `yaml:"redis_addr" json:"redis_addr"`
	RedisDB       int           `yaml:"redis_db" json:"redis_db"`
	RedisPassword string        `yaml:"redis_password" json:"redis_password"`
	Prefix        string        `yaml:"prefix" json:"prefix"`
	TTL           time.Duration `yaml:"ttl" json:"ttl"`
}

// HTTPConfig configures the serve and mcp commands.
// SolveTimeout and NodeBudget bound every request whose search settings
// are left unlimited; zero disables the bound.
type HTTPConfig struct {
	Addr         string        `yaml:"addr" json:"addr"`
	SolveTimeout time.Duration `yaml:"solve_timeout" json:"solve_timeout"`
	NodeBudget   int64         `yaml:"node_budget" json:"node_budget"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
}

// Server defaults.
const (
	DefaultSolveTimeout = 10 * time.Second
	DefaultNodeBudget   = 5_000_000
	DefaultMaxBodyBytes = 64 << 10
)

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Objective: string(domain.ObjectiveScore),
		LogLevel:  "info",
		Cache: CacheConfig{
			Backend:   CacheMemory,
			RedisAddr: "localhost:6379",
		},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			SolveTimeout: DefaultSolveTimeout,
			NodeBudget:   DefaultNodeBudget,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := make(map[string]any)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		TagName:     "yaml",
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	if _, err := domain.ParseObjective(c.Objective); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.NodeBudget < 0 {
		return fmt.Errorf("config: node_budget must not be negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}
	if c.HTTP.SolveTimeout < 0 || c.HTTP.NodeBudget < 0 || c.HTTP.MaxBodyBytes < 0 {
		return fmt.Errorf("config: http limits must not be negative")
	}
	if c.PoolSize < 0 || c.PoolSize > domain.SetSize {
		return fmt.Errorf("config: pool_size must be between 0 and %d", domain.SetSize)
	}
	switch c.Cache.Backend {
	case "", CacheNone, CacheMemory, CacheFile, CacheRedis:
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// ForServer returns the settings used to answer remote requests: a search
// left unlimited by timeout or node_budget gets the http bounds instead.
func (c Config) ForServer() Config {
	if c.Timeout == 0 {
		c.Timeout = c.HTTP.SolveTimeout
	}
	if c.NodeBudget == 0 {
		c.NodeBudget = c.HTTP.NodeBudget
	}
	return c
}
