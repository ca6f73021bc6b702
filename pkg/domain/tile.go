package domain

import "fmt"

// MaxPip is the highest face value in a double-12 set.
const MaxPip = 12

// SetSize is the number of distinct tiles in a double-12 set.
const SetSize = (MaxPip + 1) * (MaxPip + 2) / 2

// Tile is one physical domino.
// Tiles built with NewTile are canonical (Left <= Right). OrientedToward
// produces a display copy whose Left faces a given open end; identity is
// always compared on the canonical pair.
type Tile struct {
	Left  int `json:"left" yaml:"left" mapstructure:"left"`
	Right int `json:"right" yaml:"right" mapstructure:"right"`
}

// NewTile validates the face values and returns the canonical tile.
func NewTile(a, b int) (Tile, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi > MaxPip {
		return Tile{}, &InvalidTileError{A: a, B: b}
	}
	return Tile{Left: lo, Right: hi}, nil
}

// MustTile is like NewTile but panics on invalid faces.
// Intended for fixtures and tests.
func MustTile(a, b int) Tile {
	t, err := NewTile(a, b)
	if err != nil {
		panic(err)
	}
	return t
}

// FullSet returns the 91 tiles of a double-12 set in canonical order.
func FullSet() []Tile {
	tiles := make([]Tile, 0, SetSize)
	for i := 0; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			tiles = append(tiles, Tile{Left: i, Right: j})
		}
	}
	return tiles
}

// Canonical returns the tile with its faces sorted.
func (t Tile) Canonical() Tile {
	if t.Left > t.Right {
		return Tile{Left: t.Right, Right: t.Left}
	}
	return t
}

// Equal reports whether both tiles are the same physical piece.
func (t Tile) Equal(other Tile) bool {
	return t.Canonical() == other.Canonical()
}

// IsDouble reports whether both faces carry the same value.
func (t Tile) IsDouble() bool {
	return t.Left == t.Right
}

// Matches reports whether the tile can be attached to the open end.
func (t Tile) Matches(openEnd int) bool {
	return openEnd == t.Left || openEnd == t.Right
}

// OtherEnd returns the face exposed after attaching the tile to openEnd.
// The result is only meaningful when Matches(openEnd) holds.
func (t Tile) OtherEnd(openEnd int) int {
	if t.Left == openEnd {
		return t.Right
	}
	return t.Left
}

// OrientedToward returns a copy whose Left face equals openEnd.
func (t Tile) OrientedToward(openEnd int) Tile {
	return Tile{Left: openEnd, Right: t.OtherEnd(openEnd)}
}

// Pips returns the sum of both faces.
func (t Tile) Pips() int {
	return t.Left + t.Right
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.Left, t.Right)
}

// GoString renders the tile as a constructor call.
func (t Tile) GoString() string {
	return fmt.Sprintf("domain.MustTile(%d, %d)", t.Left, t.Right)
}

// ValidPip reports whether v is a legal face value.
func ValidPip(v int) bool {
	return v >= 0 && v <= MaxPip
}
