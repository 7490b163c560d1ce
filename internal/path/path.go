// Package path normalises workspace-relative file paths.
//
// Every path an LLM or user hands us goes through Normalise before it is
// opened. The result is always relative to the workspace root.
//
// Security: paths that climb out of the workspace after cleaning are rejected.
// The workspace additionally opens files through os.Root, so a path that gets
// past this check still cannot escape.
//
// Normalisation rules:
//   - Forward slashes, backslashes converted
//   - Leading and trailing slashes removed ("/src/a.go" is "src/a.go")
//   - "." and ".." components resolved; anything still above the root is rejected
//   - Empty paths and the root itself are rejected
package path

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalid indicates the provided path is invalid.
var ErrInvalid = errors.New("invalid path")

// ErrOutside indicates the path resolves above the workspace root.
var ErrOutside = errors.New("path escapes workspace")

// Normalise cleans p and returns it relative to the workspace root.
func Normalise(p string) (string, error) {
	if p == "" {
		return "", ErrInvalid
	}

	p = path.Clean(toSlash(p))
	p = strings.Trim(p, "/")

	if p == "" || p == "." {
		return "", ErrInvalid
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", ErrOutside
	}
	return p, nil
}

// Display converts p to forward slashes for output, without validating it.
func Display(p string) string {
	return toSlash(p)
}
