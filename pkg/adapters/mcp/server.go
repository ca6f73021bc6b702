// Package mcp exposes the solver as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jml312/domino-train/internal/dto"
	"github.com/jml312/domino-train/internal/presentation/graph"
	"github.com/jml312/domino-train/internal/presentation/text"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SolveResponse is the structured output of solve_train.
type SolveResponse struct {
	Result  *domain.Result `json:"result" jsonschema_description:"The best train and its statistics"`
	Text    string         `json:"text" jsonschema_description:"The train as arrow-joined tiles"`
	Mermaid string         `json:"mermaid" jsonschema_description:"Mermaid flowchart of the train"`
}

// ListResponse is the structured output of list_puzzles.
type ListResponse struct {
	Puzzles []string `json:"puzzles" jsonschema_description:"IDs of the puzzles in the library"`
}

// Solver is the part of dominotrain.Solver the MCP server needs.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Result, error)
}

// Server wraps the solver and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	library   ports.PuzzleLoader
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. library may be nil.
func NewServer(solver Solver, library ports.PuzzleLoader, version string) *Server {
	s := &Server{
		solver:    solver,
		library:   library,
		mcpServer: server.NewMCPServer("dominotrain-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it down
// when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve_train
	solveTool := mcp.NewTool("solve_train",
		mcp.WithDescription("Find the best Mexican Train from a starting value and a pool of double-12 dominoes. "+
			"Either pass puzzle_id to solve a library puzzle or starting_value and dominoes."),
		mcp.WithString("puzzle_id", mcp.Description("ID of a puzzle in the library")),
		mcp.WithNumber("starting_value", mcp.Description("Open end of the train, 0 to 12")),
		mcp.WithArray("dominoes",
			mcp.Description("Pool of tiles, each an object with left and right faces"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"left":  map[string]any{"type": "integer", "minimum": 0, "maximum": domain.MaxPip},
					"right": map[string]any{"type": "integer", "minimum": 0, "maximum": domain.MaxPip},
				},
				"required": []string{"left", "right"},
			}),
		),
		mcp.WithString("objective",
			mcp.Description("What to maximize"),
			mcp.Enum(string(domain.ObjectiveScore), string(domain.ObjectiveLength)),
		),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: list_puzzles
	listTool := mcp.NewTool("list_puzzles",
		mcp.WithDescription("List the puzzle IDs available in the library."),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	p, err := s.puzzleFromArgs(ctx, args)
	if err != nil {
		return SolveResponse{}, err
	}

	if raw, ok := args["objective"].(string); ok && raw != "" {
		objective, err := domain.ParseObjective(raw)
		if err != nil {
			return SolveResponse{}, err
		}
		p.Objective = objective
	}

	result, err := s.solver.Solve(ctx, p)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	return SolveResponse{
		Result:  result,
		Text:    text.FormatTrain(result.Train),
		Mermaid: graph.GenerateMermaid(result.StartingValue, result.Train, &graph.Overlay{Unused: p.Unused(result.Train)}),
	}, nil
}

func (s *Server) puzzleFromArgs(ctx context.Context, args map[string]interface{}) (*domain.Puzzle, error) {
	if id, ok := args["puzzle_id"].(string); ok && id != "" {
		if s.library == nil {
			return nil, errors.New("no puzzle library configured")
		}
		return s.library.Load(ctx, id)
	}

	raw := map[string]any{
		"starting_value": args["starting_value"],
		"dominoes":       args["dominoes"],
	}
	if raw["dominoes"] == nil {
		raw["dominoes"] = []any{}
	}
	if raw["starting_value"] == nil {
		delete(raw, "starting_value")
	}

	rec, err := dto.Decode(raw)
	if err != nil {
		return nil, err
	}
	return rec.ToPuzzle()
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	if s.library == nil {
		return ListResponse{Puzzles: []string{}}, nil
	}
	ids, err := s.library.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list failed: %w", err)
	}
	return ListResponse{Puzzles: ids}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: dominotrain://puzzles
	s.mcpServer.AddResource(mcp.NewResource("dominotrain://puzzles", "Puzzle Library",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := s.handleList(ctx, mcp.CallToolRequest{}, nil)
		if err != nil {
			return nil, err
		}
		jsonBytes, _ := json.Marshal(list)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dominotrain://puzzles",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
