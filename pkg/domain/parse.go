package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseTile reads a tile written as "3|5", "3-5", "3:5" or "[3|5]".
func ParseTile(s string) (Tile, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	sep := strings.IndexAny(body, "|-:")
	if sep <= 0 || sep == len(body)-1 {
		return Tile{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidTile, s)
	}
	a, errA := strconv.Atoi(strings.TrimSpace(body[:sep]))
	b, errB := strconv.Atoi(strings.TrimSpace(body[sep+1:]))
	if errA != nil || errB != nil {
		return Tile{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidTile, s)
	}
	return NewTile(a, b)
}

// ParsePool reads tiles separated by commas or whitespace, keeping their order.
// Every malformed tile is reported.
func ParsePool(s string) ([]Tile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	pool := make([]Tile, 0, len(fields))
	var errs []error
	for _, f := range fields {
		t, err := ParseTile(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pool = append(pool, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pool, nil
}
