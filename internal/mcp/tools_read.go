// tools_read.go implements the read_content MCP tool.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/log"
	"github.com/jpl-au/nexus/internal/read"
)

type readArgs struct {
	Paths     []string `json:"paths"`
	StartLine *int     `json:"start_line"`
	EndLine   *int     `json:"end_line"`
}

func (a readArgs) options() (read.Options, error) {
	if len(a.Paths) == 0 {
		return read.Options{}, fmt.Errorf("%w: paths cannot be empty", edit.ErrInvalid)
	}
	var o read.Options
	if a.StartLine != nil {
		if *a.StartLine < 1 {
			return read.Options{}, fmt.Errorf("%w: start_line must be a positive integer", edit.ErrInvalid)
		}
		o.Start = *a.StartLine
	}
	if a.EndLine != nil {
		if *a.EndLine < 1 {
			return read.Options{}, fmt.Errorf("%w: end_line must be a positive integer", edit.ErrInvalid)
		}
		o.End = *a.EndLine
	}
	return o, nil
}

// readContent handles read_content tool calls.
func (h *handlers) readContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args readArgs
	err := decodeArgs(req, &args)

	var opts read.Options
	if err == nil {
		opts, err = args.options()
	}

	var results []read.Result
	if err == nil {
		results = h.svc.Read(ctx, args.Paths, opts)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	log.Event("mcp:read_content", "read").
		Author("mcp").
		Detail("paths", len(args.Paths)).
		Detail("failed", failed).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results)
}
