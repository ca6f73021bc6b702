// Package loam serves a directory of puzzle documents (Markdown frontmatter,
// JSON or YAML) through the Loam document repository.
package loam

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/jml312/domino-train/internal/dto"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
)

// Library adapts a Loam repository to the ports.PuzzleLoader interface.
type Library struct {
	Repo *loam.TypedRepository[dto.PuzzleRecord]
}

// New creates a library over an existing typed repository.
func New(repo *loam.TypedRepository[dto.PuzzleRecord]) *Library {
	return &Library{Repo: repo}
}

// Open initializes a read-only Loam repository at dir.
// Strict mode makes every adapter return json.Number for numeric values.
func Open(dir string) (*Library, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[dto.PuzzleRecord](repo)), nil
}

// Load retrieves a puzzle by ID. The ID may be the file name with or
// without its extension, or the id declared in the document.
func (l *Library) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	want := trimExtension(id)

	doc, err := l.Repo.Get(ctx, id)
	if err == nil {
		return toPuzzle(doc.ID, doc.Data)
	}

	// The declared id may differ from the file name.
	docs, listErr := l.Repo.List(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, errors.Join(err, listErr))
	}
	for _, d := range docs {
		if documentID(d.ID, d.Data) == want {
			return toPuzzle(d.ID, d.Data)
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, id)
}

// List returns the normalized IDs of every puzzle in the library.
// Two documents resolving to the same ID are reported as a collision.
func (l *Library) List(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := documentID(doc.ID, doc.Data)
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Watch emits the ID of every document that changes until ctx is done.
func (l *Library) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

func documentID(docID string, rec dto.PuzzleRecord) string {
	if rec.ID != "" {
		return trimExtension(rec.ID)
	}
	return trimExtension(docID)
}

func toPuzzle(docID string, rec dto.PuzzleRecord) (*domain.Puzzle, error) {
	p, err := rec.ToPuzzle()
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", docID, err)
	}
	p.ID = documentID(docID, rec)
	return p, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

var _ ports.Watchable = (*Library)(nil)
