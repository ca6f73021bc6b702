package domain

import "time"

// Result is the outcome of solving a puzzle.
type Result struct {
	Key           string        `json:"key"`
	PuzzleID      string        `json:"puzzle_id,omitempty"`
	StartingValue int           `json:"starting_value"`
	Objective     Objective     `json:"objective"`
	Train         Train         `json:"train"`
	Value         int           `json:"value"`
	Score         int           `json:"score"`
	Nodes         int64         `json:"nodes"`
	Truncated     bool          `json:"truncated,omitempty"`
	Cached        bool          `json:"cached,omitempty"`
	Elapsed       time.Duration `json:"elapsed"`
	SolvedAt      time.Time     `json:"solved_at"`
}

// Empty reports whether no tile could be placed.
func (r *Result) Empty() bool {
	return len(r.Train) == 0
}
