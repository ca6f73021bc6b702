package dominotrain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jml312/domino-train/internal/search"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed solver can hold a puzzle lock.
const DefaultLockTTL = time.Minute

// Solver is the high-level entry point of the library.
// It validates puzzles, consults the result cache and runs the search.
// A Solver is safe for concurrent use.
type Solver struct {
	engine     *search.Engine
	store      ports.ResultStore
	locker     ports.Locker
	hooks      domain.SolveHooks
	logger     *slog.Logger
	poolSize   int
	lockTTL    time.Duration
	cacheTrunc bool
	engineOpts []search.Option
	now        func() time.Time
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithStore enables result caching.
func WithStore(store ports.ResultStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithLocker serializes concurrent solves of the same puzzle so only one
// of them searches and the rest read its cached result.
func WithLocker(locker ports.Locker, ttl time.Duration) Option {
	return func(s *Solver) {
		s.locker = locker
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithHooks registers observability hooks. Repeated calls merge.
func WithHooks(hooks domain.SolveHooks) Option {
	return func(s *Solver) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithNodeBudget caps the search nodes visited per solve (0 = unlimited).
func WithNodeBudget(n int64) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, search.WithNodeBudget(n))
	}
}

// WithTimeout caps the wall time of each search (0 = unlimited).
func WithTimeout(d time.Duration) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, search.WithTimeout(d))
	}
}

// WithParallelism explores root branches on up to n goroutines.
// The chosen train is the same as with a sequential search.
func WithParallelism(n int) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, search.WithParallelism(n))
	}
}

// WithPoolSize requires every puzzle to have exactly n dominoes.
// Without it the length objective requires domain.LengthPoolSize and the
// score objective accepts any size.
func WithPoolSize(n int) Option {
	return func(s *Solver) {
		s.poolSize = n
	}
}

// WithCacheTruncated also caches results of searches stopped by a budget.
func WithCacheTruncated(enabled bool) Option {
	return func(s *Solver) {
		s.cacheTrunc = enabled
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		lockTTL: DefaultLockTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	engineOpts := append([]search.Option{
		search.WithLogger(s.logger),
		search.WithHooks(domain.SolveHooks{OnImprove: s.hooks.OnImprove}),
	}, s.engineOpts...)
	s.engine = search.NewEngine(engineOpts...)
	return s
}

// RequiredPoolSize returns the pool size enforced for objective.
func (s *Solver) RequiredPoolSize(objective domain.Objective) int {
	if s.poolSize > 0 {
		return s.poolSize
	}
	return objective.DefaultPoolSize()
}

// Validate checks a puzzle without solving it.
func (s *Solver) Validate(p *domain.Puzzle) error {
	if p == nil {
		return errors.New("puzzle is nil")
	}
	for _, t := range p.Dominoes {
		if !domain.ValidPip(t.Left) || !domain.ValidPip(t.Right) {
			return &domain.InvalidTileError{A: t.Left, B: t.Right}
		}
	}
	return p.Validate(s.RequiredPoolSize(p.EffectiveObjective()))
}

// Solve finds the best train for the puzzle.
// Errors are returned only for invalid puzzles or infrastructure failures;
// a puzzle with no playable tile yields an empty train.
func (s *Solver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Result, error) {
	if err := s.Validate(p); err != nil {
		return nil, err
	}

	key := p.Key()
	logger := s.logger.With("key", key, "puzzle_id", p.ID)

	if cached, ok := s.cached(ctx, key, logger); ok {
		return s.finish(ctx, p, cached, true), nil
	}

	if s.locker != nil && s.store != nil {
		unlock, err := s.locker.Lock(ctx, key, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock puzzle %s: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("Failed to release puzzle lock", "err", err)
			}
		}()

		// Another solver may have finished while we waited.
		if cached, ok := s.cached(ctx, key, logger); ok {
			return s.finish(ctx, p, cached, true), nil
		}
	}

	begin := s.now()
	objective := p.EffectiveObjective()
	out := s.engine.Search(ctx, p.StartingValue, p.Dominoes, objective)

	result := &domain.Result{
		Key:           key,
		PuzzleID:      p.ID,
		StartingValue: p.StartingValue,
		Objective:     objective,
		Train:         out.Train,
		Value:         out.Value,
		Score:         out.Train.Score(),
		Nodes:         out.Nodes,
		Truncated:     out.Truncated,
		Elapsed:       s.now().Sub(begin),
		SolvedAt:      s.now().UTC(),
	}

	if s.store != nil && (!result.Truncated || s.cacheTrunc) {
		if err := s.store.Save(ctx, key, result); err != nil {
			// The result is still valid without the cache.
			logger.Warn("Failed to cache result", "err", err)
		}
	}

	return s.finish(ctx, p, result, false), nil
}

func (s *Solver) cached(ctx context.Context, key string, logger *slog.Logger) (*domain.Result, bool) {
	if s.store == nil {
		return nil, false
	}
	r, err := s.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrResultNotFound) {
			logger.Warn("Failed to read result cache", "err", err)
		}
		return nil, false
	}
	return r, true
}

func (s *Solver) finish(ctx context.Context, p *domain.Puzzle, r *domain.Result, cached bool) *domain.Result {
	out := *r
	out.Train = r.Train.Clone()
	out.Cached = cached
	if p.ID != "" {
		out.PuzzleID = p.ID
	}

	if s.hooks.OnSolved != nil {
		s.hooks.OnSolved(ctx, &domain.SolveEvent{
			Timestamp: s.now(),
			Key:       out.Key,
			Objective: out.Objective,
			Value:     out.Value,
			Length:    len(out.Train),
			Nodes:     out.Nodes,
			Truncated: out.Truncated,
			Cached:    cached,
			Elapsed:   out.Elapsed,
		})
	}
	return &out
}

// FindBestTrain returns the best train laid from start using tiles from
// pool. Every tile must be valid. It never fails: when no tile matches the
// train is empty.
func FindBestTrain(start int, pool []domain.Tile, objective domain.Objective) domain.Train {
	return search.Search(start, pool, objective)
}
