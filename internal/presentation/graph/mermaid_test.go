package graph_test

import (
	"strings"
	"testing"

	"github.com/jml312/domino-train/internal/presentation/graph"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		train    domain.Train
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:  "Train Chain",
			start: 3,
			train: domain.Train{{Left: 3, Right: 5}, {Left: 5, Right: 5}, {Left: 5, Right: 8}},
			contains: []string{
				"graph LR",
				"start((\"3\"))",
				"t0[\"3|5\"]",
				"t1{{\"5|5\"}}",
				"t2[\"5|8\"]",
				"start -- \"3\" --> t0",
				"t0 -- \"5\" --> t1",
				"t1 -- \"5\" --> t2",
				"class t2 open;",
			},
			excludes: []string{"subgraph"},
		},
		{
			name:     "Empty Train",
			start:    7,
			train:    nil,
			contains: []string{"start((\"7\"))", "class start start;"},
			excludes: []string{"-->", "open;"},
		},
		{
			name:    "Unused Overlay",
			start:   2,
			train:   domain.Train{{Left: 2, Right: 2}},
			overlay: &graph.Overlay{Unused: []domain.Tile{{Left: 9, Right: 11}, {Left: 0, Right: 0}}},
			contains: []string{
				"subgraph unused [Unused]",
				"u0[\"9|11\"]",
				"u1{{\"0|0\"}}",
				"class u0,u1 unused;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.start, tt.train, tt.overlay)
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(out, want), "expected %q in:\n%s", want, out)
			}
			for _, bad := range tt.excludes {
				assert.False(t, strings.Contains(out, bad), "unexpected %q in:\n%s", bad, out)
			}
		})
	}
}
