package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner with the version underneath.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []termenv.Style{
		termenv.String("  ___                _             _____         _      ").Foreground(p.Color("#818cf8")),
		termenv.String(" |   \\ ___ _ __  (_)_ _  ___   |_   _| _ __ _(_)_ _  ").Foreground(p.Color("#a78bfa")),
		termenv.String(" | |) / _ \\ '  \\ | | ' \\/ _ \\    | || '_/ _` | | ' \\ ").Foreground(p.Color("#c084fc")),
		termenv.String(" |___/\\___/_|_|_||_|_||_\\___/    |_||_| \\__,_|_|_||_|").Foreground(p.Color("#f472b6")),
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
