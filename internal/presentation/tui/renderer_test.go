package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererFor_NonTerminalIsPlain(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.md"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))

	out, err := RendererFor(f)("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestNewRenderer_RendersMarkdown(t *testing.T) {
	out, err := NewRenderer()("# Best train\n\n`[3|5] -> [5|8]`")
	require.NoError(t, err)
	assert.Contains(t, out, "Best train")
	assert.Contains(t, out, "[3|5]")
}

func TestPrintBanner_IncludesVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}
