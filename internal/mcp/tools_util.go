// tools_util.go provides helpers for MCP tool argument handling.
//
// Arguments are decoded strictly: an unknown key or a value of the wrong
// type fails the call before any file is touched, so a typo such as
// "ignorecase" cannot silently change the meaning of an edit.

package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/nexus/internal/edit"
)

// decodeArgs decodes the request arguments into v, rejecting unknown keys
// and mistyped values. Errors wrap edit.ErrInvalid.
func decodeArgs(req mcp.CallToolRequest, v any) error {
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return fmt.Errorf("%w: %w", edit.ErrInvalid, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: arguments: %w", edit.ErrInvalid, err)
	}
	return nil
}

// jsonResult serialises v as pretty-printed JSON and wraps it in an MCP text
// result. LLMs parse indented output more reliably than compact JSON.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
