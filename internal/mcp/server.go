// Package mcp implements the Model Context Protocol server, exposing the
// nexus file toolkit to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/read"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Service is what the tools need from the workspace.
type Service interface {
	edit.Editor
	read.Batcher
}

// Serve starts the MCP server over stdio. Built-in tools run against the
// context's workspace; extension tools receive the context itself.
func Serve(extCtx extension.Context, tools []extension.MCPTool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx, tools)

	slog.Info("nexus MCP server ready",
		"version", Version,
		"transport", "stdio",
		"workspace", extCtx.Workspace().Dir(),
		"tools", len(s.ListTools()))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds an MCP server with the built-in tools and the given
// extension tools registered.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"nexus",
		Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, &handlers{svc: extCtx.Workspace()})
	for _, t := range tools {
		s.AddTool(t.Tool, bind(extCtx, t.Handler))
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
func bind(extCtx extension.Context, h extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, extCtx, req)
	}
}

// handlers provides MCP request handlers with access to the workspace.
type handlers struct {
	svc Service
}

var editItem = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"search": map[string]any{
			"type":        "string",
			"description": "Text to search for. Matched within each line, never across lines.",
		},
		"replace": map[string]any{
			"type":        "string",
			"description": "Text to replace every match with.",
		},
		"is_regex": map[string]any{
			"type":        "boolean",
			"description": "Regular expressions are not supported; true is rejected.",
			"default":     false,
		},
		"ignore_case": map[string]any{
			"type":        "boolean",
			"description": "Match without regard to case. The replacement is inserted as written.",
			"default":     false,
		},
	},
	"required":             []string{"search", "replace"},
	"additionalProperties": false,
}

// registerTools exposes nexus operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("edit_file",
			mcp.WithDescription("Make selective edits to a file using ordered search/replace operations. "+
				"Indentation is preserved. Returns a unified diff followed by a status line."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Relative path of the file to edit")),
			mcp.WithArray("edits", mcp.Required(), mcp.MinItems(1),
				mcp.Description("Edits to apply in order; each sees the result of the previous one"),
				mcp.Items(editItem)),
			mcp.WithBoolean("dry_run", mcp.DefaultBool(false),
				mcp.Description("Preview the diff without writing")),
		),
		h.editFile,
	)

	s.AddTool(
		mcp.NewTool("read_content",
			mcp.WithDescription("Read content from multiple files. Returns a JSON array of {path, content} or {path, error} in the order given."),
			mcp.WithArray("paths", mcp.Required(), mcp.MinItems(1),
				mcp.Description("Relative file paths to read"),
				mcp.WithStringItems()),
			mcp.WithNumber("start_line", mcp.Min(1), mcp.Description("First line to read (1-based)")),
			mcp.WithNumber("end_line", mcp.Min(1), mcp.Description("Last line to read (1-based, inclusive)")),
		),
		h.readContent,
	)
}
