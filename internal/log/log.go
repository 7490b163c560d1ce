// Package log provides audit logging for nexus operations.
// Entries are stored in ~/.nexus/log/nexus-log.db and record every CLI
// command and MCP tool invocation across workspaces.
//
// # Fluent API
//
//	log.Event("edit:edit", "edit").
//		Author(cmd.Author()).
//		Path(p).
//		Detail("edits", len(ops)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools, e.g. "read:read", "mcp:edit_file".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "edit:edit", "mcp:read_content"
	Author string // who performed the action
	Action string // verb: read, edit, config, serve
	Path   string // input path as given

	Resolved string // output: normalised path, if it differs from Path

	// Timing
	Start int64 // unix milliseconds when Event() called
	End   int64 // unix milliseconds when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "edit:edit", "read:read")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:edit_file")
//
// The action describes what was done: "read", "edit", "config", "serve".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author(). For MCP tools, use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the path this operation targets. Batch reads record their paths
// as a detail instead.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Resolved sets the normalised path (output). Only recorded when it differs
// from the input path.
func (b *Builder) Resolved(path string) *Builder {
	if path != b.entry.Path {
		b.entry.Resolved = path
	}
	return b
}

// Detail adds a key-value pair to the entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// edit counts, dry-run flags, diff stats, path counts.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry, deriving success/failure from err.
//
//	res, err := svc.Edit(ctx, req)
//	log.Event("mcp:edit_file", "edit").Path(req.Path).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}
	// Concurrent batch reads log from many goroutines; one connection keeps
	// SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute workspace directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
