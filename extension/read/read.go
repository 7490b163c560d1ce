// Package read provides the read extension for nexus.
// It registers the read command.
package read

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/nexus/cmd"
	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/log"
	"github.com/jpl-au/nexus/internal/read"
	"github.com/jpl-au/nexus/internal/workspace"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the read extension.
type Extension struct {
	ws *workspace.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "read".
func (e *Extension) Name() string { return "read" }

// Init receives the shared workspace from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ws = ctx.Workspace()
	return nil
}

// Commands returns the read command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newReadCmd()}
}

// MCPTools returns nil - read_content is registered by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

func (e *Extension) newReadCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "read <path>...",
		Short: "Read one or more files",
		Long: `Read files concurrently and print a JSON array of results in the order given.

  nexus read README.md src/main.go
  nexus read src/main.go -l 10:20    # lines 10 to 20
  nexus read src/main.go -l 10:      # line 10 to the end

A path that cannot be read gets an "error" entry; the others are unaffected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runRead,
	}
	c.Flags().StringP(extension.FlagLines, "l", "", "Line range (e.g., 10:20)")
	return c
}

func (e *Extension) runRead(c *cobra.Command, args []string) error {
	lines, _ := c.Flags().GetString(extension.FlagLines)

	var opts read.Options
	var err error
	if lines != "" {
		opts, err = read.ParseLineRange(lines)
	}

	var results []read.Result
	if err == nil {
		results, err = read.Run(c.Context(), cmd.Out(), e.ws, args, opts)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	log.Event("read:read", "read").
		Author(cmd.Author()).
		Detail("paths", len(args)).
		Detail("failed", failed).
		Detail("lines", lines).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read: %w", err))
	}
	return nil
}
