// Package read implements batch reads of workspace files.
//
// Batch fans out one goroutine per path and waits for all of them. A failing
// path never stops the others: each path settles into its own Result, either
// with content or with an error message, and results come back in the order
// the paths were given.
package read

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/path"
	"github.com/jpl-au/nexus/internal/validate"
)

// Per-path error messages.
const (
	MsgNotFound   = "File not found"
	MsgNotFile    = "Path is not a file"
	MsgUnexpected = "Unexpected error during processing."
)

// Options selects a 1-based inclusive line range. Zero means unset.
type Options struct {
	Start int
	End   int
}

// Ranged reports whether any bound is set.
func (o Options) Ranged() bool {
	return o.Start > 0 || o.End > 0
}

// Result is the outcome for one path. Exactly one of Content or Error is
// meaningful; Content is a pointer so that an empty file still serialises.
type Result struct {
	Path    string  `json:"path"`
	Content *string `json:"content,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Failed reports whether the path could not be read.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Reader is what Batch needs from the filesystem.
type Reader interface {
	Resolve(rel string) (string, error)
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	ReadFile(ctx context.Context, path string) (string, error)
}

// Batch reads every path concurrently and returns one Result per path, in
// input order.
func Batch(ctx context.Context, svc Reader, paths []string, opts Options) []Result {
	results := make([]Result, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Go(func() {
			results[i] = settle(ctx, svc, p, opts)
		})
	}
	wg.Wait()

	return results
}

// settle runs one read and converts a panic into an error result.
func settle(ctx context.Context, svc Reader, p string, opts Options) (r Result) {
	display := path.Display(p)
	defer func() {
		if rec := recover(); rec != nil {
			r = Result{Path: display, Error: MsgUnexpected}
		}
	}()

	content, err := one(ctx, svc, p, opts)
	if err != nil {
		return Result{Path: display, Error: message(err)}
	}
	return Result{Path: display, Content: &content}
}

var errNotFile = errors.New(MsgNotFile)

func one(ctx context.Context, svc Reader, p string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := svc.Resolve(p)
	if err != nil {
		return "", err
	}

	info, err := svc.Stat(ctx, target)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", errNotFile
	}

	content, err := svc.ReadFile(ctx, target)
	if err != nil {
		return "", fmt.Errorf("Failed to read file: %w", err)
	}

	if !opts.Ranged() {
		return content, nil
	}
	return Slice(content, opts)
}

func message(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return MsgNotFound
	default:
		return err.Error()
	}
}

// Slice returns the lines of content in the range opts selects, joined with
// "\n". A start past the last line yields empty content; an end past it is
// clamped.
func Slice(content string, opts Options) (string, error) {
	if err := validate.LineRange(opts.Start, opts.End); err != nil {
		return "", err
	}

	lines := edit.Split(content)
	start := max(opts.Start, 1)
	end := len(lines)
	if opts.End > 0 {
		end = min(opts.End, len(lines))
	}

	if start > len(lines) {
		return "", nil
	}
	return strings.Join(lines[start-1:end], "\n"), nil
}

// ParseLineRange parses "start:end" into Options.
//
// Formats:
//   - "10"     line 10 only
//   - "10:20"  lines 10 through 20
//   - "10:"    line 10 to end
//   - ":20"    start to line 20
func ParseLineRange(s string) (Options, error) {
	bad := fmt.Errorf("%w: %q (use start:end)", validate.ErrInvalidRange, s)

	if s == "" {
		return Options{}, bad
	}

	startStr, endStr, ranged := strings.Cut(s, ":")
	if !ranged {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Options{}, bad
		}
		return Options{Start: n, End: n}, nil
	}

	var o Options
	if startStr != "" {
		n, err := strconv.Atoi(startStr)
		if err != nil || n < 1 {
			return Options{}, bad
		}
		o.Start = n
	}
	if endStr != "" {
		n, err := strconv.Atoi(endStr)
		if err != nil || n < 1 {
			return Options{}, bad
		}
		o.End = n
	}
	if !o.Ranged() {
		return Options{}, bad
	}
	return o, validate.LineRange(o.Start, o.End)
}

// Batcher is anything that can run a batch read.
type Batcher interface {
	Read(ctx context.Context, paths []string, opts Options) []Result
}

// Run reads paths through svc and writes the results to w as indented JSON.
func Run(ctx context.Context, w io.Writer, svc Batcher, paths []string, opts Options) ([]Result, error) {
	results := svc.Read(ctx, paths, opts)

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return results, err
	}
	_, err = fmt.Fprintln(w, string(data))
	return results, err
}
