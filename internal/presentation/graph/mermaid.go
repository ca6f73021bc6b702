package graph

import (
	"fmt"
	"strings"

	"github.com/jml312/domino-train/pkg/domain"
)

// Overlay contains extra puzzle data to visualize next to the train.
type Overlay struct {
	Unused []domain.Tile
}

// GenerateMermaid produces a Mermaid flowchart of a train laid from start.
// It applies semantic styling:
// - Start: ((Circle)) holding the starting value
// - Double: {{Hexagon}}
// - Default: [Rectangle]
// Edges are labelled with the matched face. The last tile is styled as the
// open end. Unused pool tiles are grouped in a subgraph when an overlay is given.
func GenerateMermaid(start int, train domain.Train, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    start((\"%d\"))\n", start))

	prev := "start"
	openEnd := start
	for i, t := range train {
		id := fmt.Sprintf("t%d", i)
		sb.WriteString(fmt.Sprintf("    %s\n", tileNode(id, t)))
		sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", prev, openEnd, id))
		prev = id
		openEnd = t.Right
	}

	sb.WriteString("\n    %% Styles\n")
	sb.WriteString("    classDef start fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef open fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString("    class start start;\n")
	if len(train) > 0 {
		sb.WriteString(fmt.Sprintf("    class %s open;\n", prev))
	}

	if overlay != nil && len(overlay.Unused) > 0 {
		sb.WriteString("\n    subgraph unused [Unused]\n")
		for i, t := range overlay.Unused {
			sb.WriteString(fmt.Sprintf("        %s\n", tileNode(fmt.Sprintf("u%d", i), t)))
		}
		sb.WriteString("    end\n")
		sb.WriteString("    classDef unused fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4 2,color:#000;\n")
		ids := make([]string, len(overlay.Unused))
		for i := range overlay.Unused {
			ids[i] = fmt.Sprintf("u%d", i)
		}
		sb.WriteString(fmt.Sprintf("    class %s unused;\n", strings.Join(ids, ",")))
	}

	return sb.String()
}

func tileNode(id string, t domain.Tile) string {
	opener, closer := "[", "]"
	if t.IsDouble() {
		opener, closer = "{{", "}}"
	}
	return fmt.Sprintf("%s%s\"%d|%d\"%s", id, opener, t.Left, t.Right, closer)
}
