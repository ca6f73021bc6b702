package domain

import (
	"fmt"
	"strings"
)

// Train is an ordered chain of tiles extending from a starting open end.
type Train []Tile

// Score returns the total pips of every tile in the train.
func (tr Train) Score() int {
	total := 0
	for _, t := range tr {
		total += t.Pips()
	}
	return total
}

// Len returns the number of tiles in the train.
func (tr Train) Len() int {
	return len(tr)
}

// OpenEnd returns the face exposed at the free end of the train.
func (tr Train) OpenEnd(start int) int {
	if len(tr) == 0 {
		return start
	}
	return tr[len(tr)-1].Right
}

// Validate checks that the train is connected from start and that no
// physical tile appears twice.
func (tr Train) Validate(start int) error {
	openEnd := start
	seen := make(map[Tile]int, len(tr))
	for i, t := range tr {
		if t.Left != openEnd {
			return fmt.Errorf("tile %d %s does not continue open end %d", i, t, openEnd)
		}
		key := t.Canonical()
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("tile %s used at positions %d and %d", key, prev, i)
		}
		seen[key] = i
		openEnd = t.Right
	}
	return nil
}

// Clone returns an independent copy of the train.
func (tr Train) Clone() Train {
	if tr == nil {
		return nil
	}
	out := make(Train, len(tr))
	copy(out, tr)
	return out
}

func (tr Train) String() string {
	parts := make([]string, len(tr))
	for i, t := range tr {
		parts[i] = t.String()
	}
	return strings.Join(parts, " -> ")
}
