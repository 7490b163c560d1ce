// guide.go implements the "nexus guide" command and the guide MCP tool.
//
// Guides are embedded in the binary via the guide package. Terminal output
// gets glamour rendering; pipes and redirects get raw markdown so the text
// can be loaded into an LLM context as is.

package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/jpl-au/nexus/cmd"
	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/guide"
	"github.com/jpl-au/nexus/internal/log"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the nexus usage guide",
		Long: `Outputs the nexus guide for LLMs and humans.

  nexus guide           # main guide
  nexus guide edit      # editing rules and diff format
  nexus guide read      # batch reads and line ranges`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Author(cmd.Author()).Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.Terminal() {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcplib.NewTool("guide",
			mcplib.WithDescription("Get help content for nexus tools"),
			mcplib.WithString("topic", mcplib.Description("Guide topic (edit, read, serve, config) or empty for the index")),
		),
		Handler: guideHandler,
	}
}

// guideHandler serves guide pages. An unknown topic is not an error: the
// caller gets the list of topics instead.
func guideHandler(_ context.Context, _ extension.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	topic := req.GetString("topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return mcplib.NewToolResultText(fmt.Sprintf("unknown topic %q. Available topics: %s",
			topic, strings.Join(topics, ", "))), nil
	}

	return mcplib.NewToolResultText(content), nil
}
