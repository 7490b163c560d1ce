// Package edit provides the selective text-editing engine.
//
// A Request carries a path and an ordered list of search/replace operations.
// Execute reads the file, runs every operation over the file's lines in order
// (rewriting line bodies and leaving indentation alone), diffs the result
// against the original and, unless the request is a dry run, writes it back.
//
// Lines are split on "\n" or "\r\n" and always rejoined with "\n", so CRLF
// files come back LF-terminated after an edit.
//
// There is no locking across requests. Concurrent edits to the same file are
// the caller's problem.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jpl-au/nexus/internal/diff"
)

// Status lines appended to the diff text.
const (
	StatusApplied = "Changes applied successfully."
	StatusDryRun  = "Dry run: No changes applied."
)

// Request is one edit invocation against one file.
type Request struct {
	Path   string      `json:"path" yaml:"path"`
	Edits  []Operation `json:"edits" yaml:"edits"`
	DryRun bool        `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Validate checks the shape of the request. It does no I/O.
func (r Request) Validate() error {
	if r.Path == "" {
		return fmt.Errorf("%w: path is required", ErrInvalid)
	}
	if len(r.Edits) == 0 {
		return fmt.Errorf("%w: at least one edit is required", ErrInvalid)
	}
	for i, op := range r.Edits {
		// Regex edits are rejected later as unsupported, whatever the pattern.
		if op.Search == "" && op.Mode() != Regex {
			return fmt.Errorf("%w: edit %d: search text is required", ErrInvalid, i+1)
		}
	}
	return nil
}

// Result is the outcome of a successful Execute.
type Result struct {
	Path    string     `json:"path"`
	Diff    string     `json:"diff"`
	Applied bool       `json:"applied"`
	Stats   diff.Stats `json:"stats"`
}

// Status returns the status line for the result.
func (r Result) Status() string {
	if r.Applied {
		return StatusApplied
	}
	return StatusDryRun
}

// Text returns the diff followed by two blank lines and the status line.
func (r Result) Text() string {
	return r.Format(false)
}

// Format is Text with optional ANSI colouring of the diff.
func (r Result) Format(colour bool) string {
	d := r.Diff
	if colour {
		d = diff.Colourise(d)
	}
	return d + "\n\n" + r.Status()
}

// Files is what Execute needs from the filesystem.
type Files interface {
	// Resolve maps a relative path to the path ReadFile and WriteFile accept.
	// Its output is trusted; sandboxing is the resolver's job.
	Resolve(rel string) (string, error)
	// ReadFile returns the whole file. A missing file must yield an error
	// matching fs.ErrNotExist.
	ReadFile(ctx context.Context, path string) (string, error)
	// WriteFile replaces the whole file atomically.
	WriteFile(ctx context.Context, path, content string) error
}

// Editor is anything that can execute an edit request.
type Editor interface {
	Edit(ctx context.Context, req Request) (Result, error)
}

// Transform runs ops over text and returns the rewritten text.
func Transform(text string, ops []Operation) (string, error) {
	lines, err := Pipeline(ops, DecomposeAll(Split(text)))
	if err != nil {
		return "", err
	}
	return Join(lines), nil
}

// Execute validates req, reads the file, applies every edit, diffs and, when
// req.DryRun is false, writes the new content.
//
// The diff is always taken between the original and the fully edited text.
// Nothing is written unless every edit succeeded. If the write fails the
// error is returned and the diff is dropped.
func Execute(ctx context.Context, files Files, req Request) (Result, error) {
	r := Result{Path: req.Path}

	if err := req.Validate(); err != nil {
		return r, err
	}

	target, err := files.Resolve(req.Path)
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	original, err := files.ReadFile(ctx, target)
	if errors.Is(err, fs.ErrNotExist) {
		return r, fmt.Errorf("%w: %s", ErrNotFound, req.Path)
	}
	if err != nil {
		return r, fmt.Errorf("%w: read %s: %w", ErrIO, req.Path, err)
	}

	modified, err := Transform(original, req.Edits)
	if err != nil {
		return r, err
	}

	r.Diff = diff.Unified(req.Path, original, modified)
	r.Stats = diff.Count(original, modified)

	if req.DryRun {
		return r, nil
	}

	if err := files.WriteFile(ctx, target, modified); err != nil {
		return Result{Path: req.Path}, fmt.Errorf("%w: write %s: %w", ErrIO, req.Path, err)
	}
	r.Applied = true
	return r, nil
}

// Run executes req through svc and writes the result text to w.
func Run(ctx context.Context, w io.Writer, svc Editor, req Request, colour bool) (Result, error) {
	r, err := svc.Edit(ctx, req)
	if err != nil {
		return r, err
	}

	fmt.Fprintln(w, r.Format(colour))
	return r, nil
}
