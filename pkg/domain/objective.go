package domain

import (
	"fmt"
	"strings"
)

// Objective is the quantity a search maximizes.
type Objective string

const (
	// ObjectiveScore maximizes the total pips of the train.
	ObjectiveScore Objective = "score"
	// ObjectiveLength maximizes the number of tiles in the train.
	ObjectiveLength Objective = "length"
)

// LengthPoolSize is the pool size enforced by the length variant.
const LengthPoolSize = 16

// ParseObjective accepts "score"/"pips" and "length"/"count" (case-insensitive).
// An empty string selects ObjectiveScore.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "score", "pips":
		return ObjectiveScore, nil
	case "length", "count", "tiles":
		return ObjectiveLength, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// Value scores a train under the objective.
func (o Objective) Value(tr Train) int {
	if o == ObjectiveLength {
		return tr.Len()
	}
	return tr.Score()
}

// DefaultPoolSize returns the pool size the objective's variant enforces, or 0 for any.
func (o Objective) DefaultPoolSize() int {
	if o == ObjectiveLength {
		return LengthPoolSize
	}
	return 0
}

func (o Objective) String() string {
	return string(o)
}
