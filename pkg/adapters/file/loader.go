// Package file reads puzzle documents from disk and caches results as JSON files.
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jml312/domino-train/internal/dto"
	"github.com/jml312/domino-train/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the parser for a puzzle document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything that is not
// ".json" is treated as YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadPuzzle reads a puzzle document (JSON or YAML) from path.
// The puzzle ID defaults to the file name without extension.
func LoadPuzzle(path string) (*domain.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, path)
		}
		return nil, fmt.Errorf("failed to open puzzle: %w", err)
	}
	defer f.Close()

	p, err := DecodePuzzle(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.ID == "" {
		base := filepath.Base(path)
		p.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// DecodePuzzle parses and validates a puzzle document.
func DecodePuzzle(r io.Reader, format Format) (*domain.Puzzle, error) {
	raw, err := decodeRaw(r, format)
	if err != nil {
		return nil, err
	}
	rec, err := dto.Decode(raw)
	if err != nil {
		return nil, err
	}
	return rec.ToPuzzle()
}

func decodeRaw(r io.Reader, format Format) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}

	raw := make(map[string]any)
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse puzzle json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse puzzle yaml: %w", err)
		}
	}
	return raw, nil
}

// WritePuzzle encodes a puzzle in the given format.
func WritePuzzle(w io.Writer, p *domain.Puzzle, format Format) error {
	rec := dto.FromPuzzle(p)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	}
}
