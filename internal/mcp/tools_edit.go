// tools_edit.go implements the edit_file MCP tool.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/log"
)

// editArgs is the wire shape of edit_file. Pointers mark required fields so
// a missing key is distinguishable from an empty string.
type editArgs struct {
	Path   *string       `json:"path"`
	Edits  []editArgItem `json:"edits"`
	DryRun bool          `json:"dry_run"`
}

type editArgItem struct {
	Search     *string `json:"search"`
	Replace    *string `json:"replace"`
	IsRegex    bool    `json:"is_regex"`
	IgnoreCase bool    `json:"ignore_case"`
}

// request converts the decoded arguments into an edit request.
func (a editArgs) request() (edit.Request, error) {
	if a.Path == nil {
		return edit.Request{}, fmt.Errorf("%w: path is required", edit.ErrInvalid)
	}
	req := edit.Request{Path: *a.Path, DryRun: a.DryRun}
	for i, e := range a.Edits {
		if e.Search == nil || e.Replace == nil {
			return edit.Request{}, fmt.Errorf("%w: edit %d: search and replace are required", edit.ErrInvalid, i+1)
		}
		req.Edits = append(req.Edits, edit.Operation{
			Search:     *e.Search,
			Replace:    *e.Replace,
			Regex:      e.IsRegex,
			IgnoreCase: e.IgnoreCase,
		})
	}
	return req, req.Validate()
}

// editFile handles edit_file tool calls.
func (h *handlers) editFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args editArgs
	err := decodeArgs(req, &args)

	var r edit.Request
	if err == nil {
		r, err = args.request()
	}

	var res edit.Result
	if err == nil {
		res, err = h.svc.Edit(ctx, r)
	}

	log.Event("mcp:edit_file", "edit").
		Author("mcp").
		Path(r.Path).
		Detail("edits", len(r.Edits)).
		Detail("dry_run", r.DryRun).
		Detail("added", res.Stats.Added).
		Detail("removed", res.Stats.Removed).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.Text()), nil
}
