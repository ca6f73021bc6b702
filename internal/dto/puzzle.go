// Package dto holds the wire shapes puzzle documents are decoded into before
// they become domain values.
package dto

import (
	"errors"
	"fmt"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// PuzzleRecord is the document form of a puzzle.
// It uses "mapstructure" tags to match frontmatter and YAML keys.
type PuzzleRecord struct {
	ID            string       `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	Name          string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	StartingValue *int         `json:"starting_value" yaml:"starting_value" mapstructure:"starting_value"`
	Objective     string       `json:"objective,omitempty" yaml:"objective,omitempty" mapstructure:"objective"`
	PoolSize      int          `json:"pool_size,omitempty" yaml:"pool_size,omitempty" mapstructure:"pool_size"`
	Dominoes      []TileRecord `json:"dominoes" yaml:"dominoes" mapstructure:"dominoes"`
}

// TileRecord is one {left, right} entry of the dominoes list.
type TileRecord struct {
	Left  int `json:"left" yaml:"left" mapstructure:"left"`
	Right int `json:"right" yaml:"right" mapstructure:"right"`
}

// PuzzleSchema describes a valid raw puzzle document.
var PuzzleSchema = schema.Schema{
	"starting_value": schema.Pip(),
	"dominoes":       schema.Slice(schema.Domino()),
	"id":             schema.Optional(schema.String()),
	"name":           schema.Optional(schema.String()),
	"objective":      schema.Optional(schema.String()),
	"pool_size":      schema.Optional(schema.Int()),
}

// Decode validates a raw document against PuzzleSchema and decodes it.
func Decode(raw map[string]any) (*PuzzleRecord, error) {
	if err := schema.Validate(PuzzleSchema, raw); err != nil {
		return nil, err
	}

	var rec PuzzleRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &rec,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle: %w", err)
	}
	return &rec, nil
}

// FromPuzzle converts a domain puzzle back to its document form.
func FromPuzzle(p *domain.Puzzle) *PuzzleRecord {
	start := p.StartingValue
	rec := &PuzzleRecord{
		ID:            p.ID,
		Name:          p.Name,
		StartingValue: &start,
		Objective:     string(p.Objective),
		Dominoes:      make([]TileRecord, len(p.Dominoes)),
	}
	for i, t := range p.Dominoes {
		rec.Dominoes[i] = TileRecord{Left: t.Left, Right: t.Right}
	}
	return rec
}

// ToPuzzle builds the domain puzzle. Every invalid tile is reported, not
// just the first. A pool_size in the document is enforced here.
func (r *PuzzleRecord) ToPuzzle() (*domain.Puzzle, error) {
	var errs []error

	if r.StartingValue == nil {
		errs = append(errs, &schema.ValidationError{Key: "starting_value", Reason: "required"})
	}

	// An absent objective stays empty so callers can apply their default.
	var objective domain.Objective
	if r.Objective != "" {
		parsed, err := domain.ParseObjective(r.Objective)
		if err != nil {
			errs = append(errs, &schema.ValidationError{Key: "objective", Reason: "unknown objective", Value: r.Objective, Err: err})
		}
		objective = parsed
	}

	pool := make([]domain.Tile, 0, len(r.Dominoes))
	for i, tr := range r.Dominoes {
		t, err := domain.NewTile(tr.Left, tr.Right)
		if err != nil {
			errs = append(errs, &schema.ValidationError{
				Key:    fmt.Sprintf("dominoes[%d]", i),
				Reason: err.Error(),
				Err:    err,
			})
			continue
		}
		pool = append(pool, t)
	}

	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}

	p := &domain.Puzzle{
		ID:            r.ID,
		Name:          r.Name,
		StartingValue: *r.StartingValue,
		Objective:     objective,
		Dominoes:      pool,
	}
	if err := p.Validate(r.PoolSize); err != nil {
		return nil, err
	}
	return p, nil
}

// IsValidation reports whether err describes bad puzzle input rather than
// an I/O or infrastructure failure.
func IsValidation(err error) bool {
	var verr *schema.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, domain.ErrInvalidTile) ||
		errors.Is(err, domain.ErrInvalidStart) ||
		errors.Is(err, domain.ErrPoolSize) ||
		errors.Is(err, domain.ErrUnknownObjective)
}
