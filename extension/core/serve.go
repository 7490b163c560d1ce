// serve.go implements the "nexus serve" command.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/nexus/cmd"
	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/log"
	"github.com/jpl-au/nexus/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --dir to choose the workspace:
  nexus serve --dir /path/to/project`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	extCtx := cmd.ExtContext()
	tools := extension.Tools()

	err := mcp.Serve(extCtx, tools)

	log.Event("core:serve", "serve").
		Author(cmd.Author()).
		Detail("tools", len(tools)).
		Write(err)

	return err
}
