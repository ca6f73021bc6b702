package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
)

type verifyMiddleware struct {
	next   ports.ResultStore
	logger *slog.Logger
}

// NewVerifyMiddleware checks every loaded result before handing it out.
// A stored result whose train does not chain from its starting value, or
// whose score and value disagree with the train, is deleted and reported
// as domain.ErrResultNotFound so the caller searches again.
func NewVerifyMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ports.ResultStore) ports.ResultStore {
		return &verifyMiddleware{next: next, logger: logger}
	}
}

func (m *verifyMiddleware) Save(ctx context.Context, key string, result *domain.Result) error {
	if err := Verify(key, result); err != nil {
		return fmt.Errorf("refusing to store result: %w", err)
	}
	return m.next.Save(ctx, key, result)
}

func (m *verifyMiddleware) Load(ctx context.Context, key string) (*domain.Result, error) {
	res, err := m.next.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := Verify(key, res); err != nil {
		m.logger.Warn("discarding corrupt cached result", "key", key, "err", err)
		if delErr := m.next.Delete(ctx, key); delErr != nil {
			m.logger.Warn("failed to delete corrupt cached result", "key", key, "err", delErr)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, key)
	}
	return res, nil
}

func (m *verifyMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *verifyMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Verify checks that a result is consistent with itself and its key.
func Verify(key string, res *domain.Result) error {
	if res == nil {
		return fmt.Errorf("result %s is nil", key)
	}
	if res.Key != "" && res.Key != key {
		return fmt.Errorf("result key %q does not match %q", res.Key, key)
	}
	objective, err := domain.ParseObjective(string(res.Objective))
	if err != nil {
		return err
	}
	if err := res.Train.Validate(res.StartingValue); err != nil {
		return err
	}
	if got := res.Train.Score(); got != res.Score {
		return fmt.Errorf("score %d does not match train score %d", res.Score, got)
	}
	if got := objective.Value(res.Train); got != res.Value {
		return fmt.Errorf("value %d does not match train value %d", res.Value, got)
	}
	return nil
}
