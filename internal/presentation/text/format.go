// Package text renders trains and results as plain text and Markdown.
package text

import (
	"fmt"
	"strings"

	"github.com/jml312/domino-train/pkg/domain"
)

// EmptyTrain is printed when no tile can be placed.
const EmptyTrain = "The train is empty."

// FormatTrain joins the tiles with arrows, e.g. "[3|5] -> [5|5] -> [5|8]".
func FormatTrain(tr domain.Train) string {
	if len(tr) == 0 {
		return EmptyTrain
	}
	return tr.String()
}

// Summary renders a result as Markdown.
func Summary(p *domain.Puzzle, r *domain.Result) string {
	var sb strings.Builder

	title := "Best train"
	if p.Name != "" {
		title = p.Name
	} else if p.ID != "" {
		title = "Best train for " + p.ID
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if r.Empty() {
		fmt.Fprintf(&sb, "_%s_\n\n", EmptyTrain)
	} else {
		fmt.Fprintf(&sb, "`%s`\n\n", FormatTrain(r.Train))
	}

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Starting value | %d |\n", r.StartingValue)
	fmt.Fprintf(&sb, "| Objective | %s |\n", r.Objective)
	fmt.Fprintf(&sb, "| Tiles | %d of %d |\n", len(r.Train), len(p.Dominoes))
	fmt.Fprintf(&sb, "| Score | %d |\n", r.Score)
	fmt.Fprintf(&sb, "| Open end | %d |\n", r.Train.OpenEnd(r.StartingValue))
	fmt.Fprintf(&sb, "| Nodes explored | %d |\n", r.Nodes)

	if r.Cached {
		sb.WriteString("\n> Served from cache.\n")
	}
	if r.Truncated {
		sb.WriteString("\n> **Search stopped early.** This is the best train found within the budget, not necessarily the optimum.\n")
	}
	return sb.String()
}
