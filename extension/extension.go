// Package extension provides the plugin architecture for nexus. Extensions
// group related functionality (commands, MCP tools) and register at init
// time, so new features don't need changes to core code.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for nexus extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once the workspace is open.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Workspaceless is an optional interface for extensions with commands that
// don't need a workspace. Commands returned by NoWorkspaceCommands() do not
// trigger workspace initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Documentation commands (guide) that work anywhere
// 2. Commands that only touch configuration
// 3. Utility commands such as version
type Workspaceless interface {
	NoWorkspaceCommands() []string
}
