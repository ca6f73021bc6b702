package mcp

import (
	"context"
	"encoding/json"
	"testing"

	dominotrain "github.com/jml312/domino-train"
	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	p, err := domain.NewPuzzle(3, domain.ObjectiveScore, [2]int{3, 5}, [2]int{5, 5}, [2]int{5, 8}, [2]int{0, 0})
	require.NoError(t, err)
	p.ID = "opening"
	library, err := memory.NewLoader(*p)
	require.NoError(t, err)
	return NewServer(dominotrain.New(), library, "test")
}

func TestHandleSolve_Inline(t *testing.T) {
	s := newServer(t)

	// Arguments arrive as decoded JSON.
	var args map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"starting_value": 3,
		"dominoes": [{"left": 3, "right": 5}, {"left": 5, "right": 5}, {"left": 8, "right": 5}]
	}`), &args))

	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, 31, resp.Result.Value)
	assert.Equal(t, "[3|5] -> [5|5] -> [5|8]", resp.Text)
	assert.Contains(t, resp.Mermaid, "graph LR")
}

func TestHandleSolve_Library(t *testing.T) {
	s := newServer(t)

	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"puzzle_id": "opening",
		"objective": "length",
	})
	require.Error(t, err, "length objective requires a pool of 16")
	assert.ErrorIs(t, err, domain.ErrPoolSize)

	resp, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"puzzle_id": "opening"})
	require.NoError(t, err)
	assert.Equal(t, "opening", resp.Result.PuzzleID)
	assert.Contains(t, resp.Mermaid, "subgraph unused", "[0|0] is never played")
}

func TestHandleSolve_Invalid(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	_, err := s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"starting_value": float64(3),
		"dominoes":       []any{map[string]any{"left": float64(3), "right": float64(13)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTile)

	_, err = s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err, "starting_value is required")

	_, err = s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{"puzzle_id": "ghost"})
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestHandleSolve_EmptyTrain(t *testing.T) {
	s := newServer(t)
	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"starting_value": float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "The train is empty.", resp.Text)
}

func TestHandleList(t *testing.T) {
	s := newServer(t)
	resp, err := s.handleList(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"opening"}, resp.Puzzles)

	empty := NewServer(dominotrain.New(), nil, "test")
	resp, err = empty.handleList(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Puzzles)
}

func TestToolsList(t *testing.T) {
	s := newServer(t)
	msg := s.mcpServer.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "solve_train")
	assert.Contains(t, string(out), "list_puzzles")
}
