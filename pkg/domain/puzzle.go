package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Puzzle is a starting open end plus the pool of tiles a search may use.
type Puzzle struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name,omitempty"`
	StartingValue int       `json:"starting_value"`
	Objective     Objective `json:"objective"`
	Dominoes      []Tile    `json:"dominoes"`
}

// NewPuzzle builds a puzzle from raw face pairs, validating every tile.
func NewPuzzle(start int, objective Objective, pairs ...[2]int) (*Puzzle, error) {
	pool := make([]Tile, 0, len(pairs))
	for _, p := range pairs {
		t, err := NewTile(p[0], p[1])
		if err != nil {
			return nil, err
		}
		pool = append(pool, t)
	}
	return &Puzzle{StartingValue: start, Objective: objective, Dominoes: pool}, nil
}

// Validate checks the starting value and, when poolSize > 0, the pool size.
// Tiles are validated when constructed and are not re-checked here.
func (p *Puzzle) Validate(poolSize int) error {
	if !ValidPip(p.StartingValue) {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidStart, p.StartingValue, MaxPip)
	}
	if poolSize > 0 && len(p.Dominoes) != poolSize {
		return fmt.Errorf("%w: got %d dominoes, want %d", ErrPoolSize, len(p.Dominoes), poolSize)
	}
	return nil
}

// Key returns a stable identifier for the search this puzzle describes.
// Pool order is part of the key because it decides tie-breaking.
func (p *Puzzle) Key() string {
	var sb strings.Builder
	sb.WriteString(string(p.objectiveOrDefault()))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(p.StartingValue))
	for _, t := range p.Dominoes {
		sb.WriteByte(':')
		sb.WriteString(t.String())
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:12])
}

func (p *Puzzle) objectiveOrDefault() Objective {
	if p.Objective == "" {
		return ObjectiveScore
	}
	return p.Objective
}

// EffectiveObjective returns the puzzle objective, defaulting to ObjectiveScore.
func (p *Puzzle) EffectiveObjective() Objective {
	return p.objectiveOrDefault()
}

// Unused returns the pool tiles that do not appear in the train.
func (p *Puzzle) Unused(tr Train) []Tile {
	used := make(map[Tile]int, len(tr))
	for _, t := range tr {
		used[t.Canonical()]++
	}
	var out []Tile
	for _, t := range p.Dominoes {
		key := t.Canonical()
		if used[key] > 0 {
			used[key]--
			continue
		}
		out = append(out, t)
	}
	return out
}
