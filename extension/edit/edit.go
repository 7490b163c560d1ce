// Package edit provides the edit extension for nexus.
// It registers the edit command.
package edit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/nexus/cmd"
	"github.com/jpl-au/nexus/extension"
	"github.com/jpl-au/nexus/internal/config"
	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/log"
	"github.com/jpl-au/nexus/internal/workspace"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the edit extension.
type Extension struct {
	ws  *workspace.Service
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "edit".
func (e *Extension) Name() string { return "edit" }

// Init receives the shared workspace from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ws = ctx.Workspace()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the edit command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newEditCmd()}
}

// MCPTools returns nil - edit_file is registered by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

func (e *Extension) newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit <path> [search replace]...",
		Short: "Apply ordered search/replace edits to a file",
		Long: `Apply search/replace edits to a file and print a unified diff.

Edits run in order, each on the output of the previous one. Leading
whitespace on every line is preserved and never matched.

  nexus edit src/app.py foo bar
  nexus edit src/app.py foo bar bar baz      # two edits, in order
  nexus edit src/app.py -i "hello" "Goodbye" # case-insensitive
  nexus edit src/app.py -f edits.yaml        # edit list from a file
  nexus edit src/app.py foo bar --dry-run    # diff only

An edit list is YAML or JSON:

  - search: foo
    replace: bar
  - search: Hello
    replace: Goodbye
    ignore_case: true

Use "-f -" to read the list from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runEdit,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Edit list file (YAML or JSON, - for stdin)")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Case-insensitive matching for positional edits")
	c.Flags().Bool(extension.FlagRegex, false, "Regex matching for positional edits (not supported)")
	c.Flags().Bool(extension.FlagDryRun, false, "Print the diff without writing")
	return c
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	ctx := c.Context()
	path := args[0]

	req, err := e.request(c, args)

	var result edit.Result
	if err == nil {
		w := cmd.Out()
		if cmd.JSON() {
			w = io.Discard
		}
		result, err = edit.Run(ctx, w, e.ws, req, cmd.Colour(e.cfg))
	}

	l := log.Event("edit:edit", "edit").
		Author(cmd.Author()).
		Path(path).
		Detail("edits", len(req.Edits)).
		Detail("dry_run", req.DryRun).
		Detail("added", result.Stats.Added).
		Detail("removed", result.Stats.Removed)
	if name, rerr := e.ws.Resolve(path); rerr == nil {
		l.Resolved(filepath.ToSlash(name))
	}
	l.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", path, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(struct {
			edit.Result
			Status string `json:"status"`
		}{result, result.Status()})
	}
	if cmd.Terminal() {
		fmt.Fprintf(c.ErrOrStderr(), "%s: %s\n", path, result.Stats)
	}
	return nil
}

// request builds the edit request from positional pairs and the edit list
// file. File edits run first, then positional edits.
func (e *Extension) request(c *cobra.Command, args []string) (edit.Request, error) {
	file, _ := c.Flags().GetString(extension.FlagFile)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	regex, _ := c.Flags().GetBool(extension.FlagRegex)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	req := edit.Request{Path: args[0], DryRun: dryRun}

	if file != "" {
		ops, err := loadEdits(c.InOrStdin(), file)
		if err != nil {
			return req, err
		}
		req.Edits = append(req.Edits, ops...)
	}

	pairs := args[1:]
	if len(pairs)%2 != 0 {
		return req, fmt.Errorf("%w: search text %q has no replacement", edit.ErrInvalid, pairs[len(pairs)-1])
	}
	for i := 0; i < len(pairs); i += 2 {
		req.Edits = append(req.Edits, edit.Operation{
			Search:     pairs[i],
			Replace:    pairs[i+1],
			Regex:      regex,
			IgnoreCase: ignoreCase,
		})
	}

	if len(req.Edits) == 0 {
		return req, fmt.Errorf("%w: no edits given (use search/replace pairs or --file)", edit.ErrInvalid)
	}
	return req, nil
}

// loadEdits reads an edit list. YAML is a superset of JSON so one decoder
// handles both. Unknown keys are rejected.
func loadEdits(stdin io.Reader, name string) ([]edit.Operation, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading edit list: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ops []edit.Operation
	if err := dec.Decode(&ops); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: edit list %s: %w", edit.ErrInvalid, name, err)
	}
	return ops, nil
}
