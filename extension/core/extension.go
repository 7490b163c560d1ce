// Package core provides the core extension for nexus.
// It registers commands: config, serve, guide, version, and the guide MCP tool.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/nexus/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Workspaceless = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide tool; file tools live in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool()}
}

// NoWorkspaceCommands returns commands that never touch workspace files.
// serve is absent: it shares the workspace opened for every other command.
func (e *Extension) NoWorkspaceCommands() []string {
	return []string{"config", "guide", "version"}
}
