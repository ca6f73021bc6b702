// Package cli holds the wiring shared by the dominotrain commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	dominotrain "github.com/jml312/domino-train"
	"github.com/jml312/domino-train/internal/config"
	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/jml312/domino-train/pkg/adapters/loam"
	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/adapters/redis"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/observability"
	"github.com/jml312/domino-train/pkg/persistence/middleware"
	"github.com/jml312/domino-train/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime is the set of collaborators a command works with.
type Runtime struct {
	Config   config.Config
	Logger   *slog.Logger
	Solver   *dominotrain.Solver
	Store    ports.ResultStore
	Locker   ports.Locker
	Library  ports.PuzzleLoader
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// Overrides are command-line values that take precedence over the config file.
type Overrides struct {
	Objective   *string
	NodeBudget  *int64
	Timeout     *time.Duration
	Parallelism *int
	PoolSize    *int
	Library     *string
}

// Apply copies the set overrides onto cfg.
func (o Overrides) Apply(cfg *config.Config) {
	if o.Objective != nil {
		cfg.Objective = *o.Objective
	}
	if o.NodeBudget != nil {
		cfg.NodeBudget = *o.NodeBudget
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.Parallelism != nil {
		cfg.Parallelism = *o.Parallelism
	}
	if o.PoolSize != nil {
		cfg.PoolSize = *o.PoolSize
	}
	if o.Library != nil {
		cfg.Library = *o.Library
	}
}

// NewRuntime builds the solver, cache and library described by cfg.
// Extra hooks are merged after the logging and metrics hooks.
func NewRuntime(cfg config.Config, logger *slog.Logger, extra ...domain.SolveHooks) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := &Runtime{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	metrics, err := observability.NewMetrics(rt.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	rt.Metrics = metrics

	if err := rt.setupCache(); err != nil {
		return nil, err
	}

	if cfg.Library != "" {
		lib, err := loam.Open(cfg.Library)
		if err != nil {
			_ = rt.Close()
			return nil, err
		}
		rt.Library = lib
	}

	hooks := observability.LogHooks(logger).Merge(metrics.Hooks())
	for _, h := range extra {
		hooks = hooks.Merge(h)
	}

	opts := []dominotrain.Option{
		dominotrain.WithLogger(logger),
		dominotrain.WithHooks(hooks),
		dominotrain.WithNodeBudget(cfg.NodeBudget),
		dominotrain.WithTimeout(cfg.Timeout),
		dominotrain.WithParallelism(cfg.Parallelism),
		dominotrain.WithPoolSize(cfg.PoolSize),
	}
	if rt.Store != nil {
		opts = append(opts, dominotrain.WithStore(rt.Store))
	}
	if rt.Locker != nil {
		opts = append(opts, dominotrain.WithLocker(rt.Locker, 0))
	}
	rt.Solver = dominotrain.New(opts...)

	return rt, nil
}

// NewServerRuntime is NewRuntime for the serve and mcp commands: searches
// left unlimited by the config are bounded by the http limits.
func NewServerRuntime(cfg config.Config, logger *slog.Logger, extra ...domain.SolveHooks) (*Runtime, error) {
	return NewRuntime(cfg.ForServer(), logger, extra...)
}

func (rt *Runtime) setupCache() error {
	c := rt.Config.Cache
	switch c.Backend {
	case "", config.CacheNone:
	case config.CacheMemory:
		rt.Store = memory.NewStore()
		rt.Locker = memory.NewLocker()
	case config.CacheFile:
		rt.Store = file.NewStore(c.Dir)
		rt.Locker = memory.NewLocker()
	case config.CacheRedis:
		var opts []redis.Option
		if c.TTL > 0 {
			opts = append(opts, redis.WithTTL(c.TTL))
		}
		if c.Prefix != "" {
			opts = append(opts, redis.WithPrefix(c.Prefix))
		}
		store := redis.New(c.RedisAddr, c.RedisPassword, c.RedisDB, opts...)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return fmt.Errorf("redis cache unavailable at %s: %w", c.RedisAddr, err)
		}

		rt.Store = store
		rt.Locker = redis.NewLocker(store.Client(), store.Prefix())
		rt.closers = append(rt.closers, store.Close)
	default:
		return fmt.Errorf("unknown cache backend %q", c.Backend)
	}

	// Results read back from disk or redis are checked before reuse.
	if c.Backend == config.CacheFile || c.Backend == config.CacheRedis {
		rt.Store = middleware.Chain(rt.Store, middleware.NewVerifyMiddleware(rt.Logger))
	}
	return nil
}

// Close releases connections held by the runtime.
func (rt *Runtime) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c())
	}
	rt.closers = nil
	return errors.Join(errs...)
}
