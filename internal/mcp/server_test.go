package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/config"
	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/workspace"
)

func newTestHandlers(t *testing.T, files map[string]string) (*handlers, string) {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	ws, err := workspace.Open(dir, workspace.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	return &handlers{svc: ws}, dir
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func fileContent(t *testing.T, dir, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(b)
}

func TestNewServer(t *testing.T) {
	ws, err := workspace.Open(t.TempDir(), workspace.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	extCtx := extension.NewContext(ws, &config.Config{})

	var got extension.Context
	extra := extension.MCPTool{
		Tool: mcp.NewTool("probe"),
		Handler: func(_ context.Context, c extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			got = c
			return mcp.NewToolResultText("ok"), nil
		},
	}

	s := NewServer(extCtx, []extension.MCPTool{extra})

	tools := s.ListTools()
	assert.Contains(t, tools, "edit_file")
	assert.Contains(t, tools, "read_content")
	require.Contains(t, tools, "probe")

	res, err := tools["probe"].Handler(context.Background(), call("probe", nil))
	require.NoError(t, err)
	assert.Equal(t, "ok", text(t, res))
	assert.Same(t, extCtx, got)
}

func TestEditFile(t *testing.T) {
	ctx := context.Background()

	t.Run("apply", func(t *testing.T) {
		h, dir := newTestHandlers(t, map[string]string{"src/app.py": "def foo():\n    return foo\n"})

		res, err := h.editFile(ctx, call("edit_file", map[string]any{
			"path": "src/app.py",
			"edits": []any{
				map[string]any{"search": "foo", "replace": "bar"},
			},
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		out := text(t, res)
		assert.Contains(t, out, "Index: src/app.py\n")
		assert.Contains(t, out, "@@ -1,2 +1,2 @@\n-def foo():\n-    return foo\n+def bar():\n+    return bar\n")
		assert.Contains(t, out, "\n\n"+edit.StatusApplied)
		assert.Equal(t, "def bar():\n    return bar\n", fileContent(t, dir, "src/app.py"))
	})

	t.Run("dry run", func(t *testing.T) {
		h, dir := newTestHandlers(t, map[string]string{"a.txt": "Foo bar\n"})

		res, err := h.editFile(ctx, call("edit_file", map[string]any{
			"path":    "a.txt",
			"dry_run": true,
			"edits": []any{
				map[string]any{"search": "foo", "replace": "X", "ignore_case": true},
			},
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		out := text(t, res)
		assert.Contains(t, out, "-Foo bar\n+X bar\n")
		assert.Contains(t, out, edit.StatusDryRun)
		assert.Equal(t, "Foo bar\n", fileContent(t, dir, "a.txt"))
	})

	errorCases := []struct {
		name string
		args map[string]any
		want string
	}{
		{"regex rejected", map[string]any{
			"path":  "a.txt",
			"edits": []any{map[string]any{"search": "f.o", "replace": "x", "is_regex": true}},
		}, "not supported"},
		{"unknown argument", map[string]any{
			"path":  "a.txt",
			"edits": []any{map[string]any{"search": "foo", "replace": "x"}},
			"force": true,
		}, "invalid request"},
		{"unknown edit key", map[string]any{
			"path":  "a.txt",
			"edits": []any{map[string]any{"search": "foo", "replace": "x", "global": true}},
		}, "invalid request"},
		{"wrong type", map[string]any{
			"path":  "a.txt",
			"edits": "foo",
		}, "invalid request"},
		{"missing path", map[string]any{
			"edits": []any{map[string]any{"search": "foo", "replace": "x"}},
		}, "path is required"},
		{"missing replace", map[string]any{
			"path":  "a.txt",
			"edits": []any{map[string]any{"search": "foo"}},
		}, "search and replace are required"},
		{"no edits", map[string]any{
			"path":  "a.txt",
			"edits": []any{},
		}, "at least one edit"},
		{"not found", map[string]any{
			"path":  "missing.txt",
			"edits": []any{map[string]any{"search": "foo", "replace": "x"}},
		}, "not found"},
		{"traversal", map[string]any{
			"path":  "../a.txt",
			"edits": []any{map[string]any{"search": "foo", "replace": "x"}},
		}, "invalid path"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			h, dir := newTestHandlers(t, map[string]string{"a.txt": "foo\n"})

			res, err := h.editFile(ctx, call("edit_file", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
			assert.Equal(t, "foo\n", fileContent(t, dir, "a.txt"))
		})
	}
}

func TestReadContent(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandlers(t, map[string]string{
		"a.txt":    "1\n2\n3\n",
		"src/b.go": "package b",
	})

	t.Run("batch", func(t *testing.T) {
		res, err := h.readContent(ctx, call("read_content", map[string]any{
			"paths": []any{"src/b.go", "missing", "src", "a.txt"},
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var got []map[string]string
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
		assert.Equal(t, []map[string]string{
			{"path": "src/b.go", "content": "package b"},
			{"path": "missing", "error": "File not found"},
			{"path": "src", "error": "Path is not a file"},
			{"path": "a.txt", "content": "1\n2\n3\n"},
		}, got)
	})

	t.Run("line range", func(t *testing.T) {
		res, err := h.readContent(ctx, call("read_content", map[string]any{
			"paths":      []any{"a.txt"},
			"start_line": float64(2),
			"end_line":   float64(3),
		}))
		require.NoError(t, err)

		var got []map[string]string
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
		assert.Equal(t, "2\n3", got[0]["content"])
	})

	t.Run("start after end", func(t *testing.T) {
		res, err := h.readContent(ctx, call("read_content", map[string]any{
			"paths":      []any{"a.txt"},
			"start_line": float64(3),
			"end_line":   float64(1),
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Contains(t, text(t, res), "start_line (3) cannot be greater than end_line (1)")
	})

	errorCases := []struct {
		name string
		args map[string]any
	}{
		{"empty paths", map[string]any{"paths": []any{}}},
		{"missing paths", map[string]any{}},
		{"zero start", map[string]any{"paths": []any{"a.txt"}, "start_line": float64(0)}},
		{"fractional end", map[string]any{"paths": []any{"a.txt"}, "end_line": 1.5}},
		{"unknown key", map[string]any{"paths": []any{"a.txt"}, "recursive": true}},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.readContent(ctx, call("read_content", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), "invalid request")
		})
	}
}

