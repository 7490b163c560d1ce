//go:build windows

// path_windows.go provides Windows-specific separator handling.
//
// On Windows, backslashes are native path separators. We use filepath.ToSlash
// which correctly converts them to forward slashes for consistent handling.

package path

import "path/filepath"

func toSlash(p string) string {
	return filepath.ToSlash(p)
}
