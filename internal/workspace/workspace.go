// Package workspace provides sandboxed file access rooted at one directory.
//
// Security: all file operations go through an os.Root opened on the
// workspace directory, so no path can escape it, symlinks included. Paths
// are also normalised and validated up front so that callers get a clear
// error instead of an opaque "path escapes from parent".
//
// A Service is safe for concurrent use; batch reads share one.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/jpl-au/nexus/internal/edit"
	"github.com/jpl-au/nexus/internal/read"
	"github.com/jpl-au/nexus/internal/validate"
)

// Options carries the limits a Service enforces. Zero means no limit.
type Options struct {
	MaxPath    int
	MaxContent int64
}

// Service implements edit.Files and read.Reader over a workspace directory.
type Service struct {
	root *os.Root
	dir  string
	opts Options
}

var (
	_ edit.Files   = (*Service)(nil)
	_ edit.Editor  = (*Service)(nil)
	_ read.Reader  = (*Service)(nil)
	_ read.Batcher = (*Service)(nil)
)

// Open opens the workspace rooted at dir.
func Open(dir string, opts Options) (*Service, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace %s: %w", dir, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("opening workspace %s: %w", abs, err)
	}

	return &Service{root: root, dir: abs, opts: opts}, nil
}

// Close releases the workspace root.
func (s *Service) Close() error {
	return s.root.Close()
}

// Dir returns the absolute workspace directory.
func (s *Service) Dir() string {
	return s.dir
}

// Resolve validates rel and returns the root-relative name used by the other
// methods.
func (s *Service) Resolve(rel string) (string, error) {
	p, err := validate.Path(rel, s.opts.MaxPath)
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(p), nil
}

// Stat returns file info for a resolved name.
func (s *Service) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.root.Stat(name)
}

// ReadFile reads a whole file. Files larger than MaxContent are refused
// before any content is read.
func (s *Service) ReadFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := s.root.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: is a directory", filepath.ToSlash(name))
	}
	if err := validate.Size(info.Size(), s.opts.MaxContent); err != nil {
		return "", err
	}

	content := make([]byte, info.Size())
	if _, err := io.ReadFull(f, content); err != nil {
		return "", err
	}
	return string(content), nil
}

var tmpSeq atomic.Uint64

// WriteFile replaces a file atomically: content goes to a temporary file in
// the same directory which is then renamed over the target. An existing
// file's permission bits are kept.
func (s *Service) WriteFile(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate.Content(content, s.opts.MaxContent); err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := s.root.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	// Rename only needs a writable directory, so a read-only target would
	// otherwise be replaced.
	if err := s.checkWritable(name); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(name),
		fmt.Sprintf(".%s.nexus-%d-%d.tmp", filepath.Base(name), os.Getpid(), tmpSeq.Add(1)))

	if err := s.writeTemp(tmp, content, mode); err != nil {
		_ = s.root.Remove(tmp)
		return err
	}
	if err := s.root.Rename(tmp, name); err != nil {
		_ = s.root.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", filepath.ToSlash(name), err)
	}
	return nil
}

// checkWritable fails when an existing file cannot be opened for writing.
func (s *Service) checkWritable(name string) error {
	f, err := s.root.OpenFile(name, os.O_WRONLY, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return f.Close()
}

func (s *Service) writeTemp(tmp, content string, mode fs.FileMode) error {
	f, err := s.root.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	// OpenFile is subject to the umask.
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return fmt.Errorf("setting mode: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	return nil
}

// Edit runs an edit request against the workspace.
func (s *Service) Edit(ctx context.Context, req edit.Request) (edit.Result, error) {
	return edit.Execute(ctx, s, req)
}

// Read runs a batch read against the workspace.
func (s *Service) Read(ctx context.Context, paths []string, opts read.Options) []read.Result {
	return read.Batch(ctx, s, paths, opts)
}
