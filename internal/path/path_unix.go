//go:build !windows

// path_unix.go provides Unix-specific separator handling (Linux, macOS, etc).
//
// On Unix systems, backslashes are valid filename characters, not path separators.
// Therefore filepath.ToSlash does NOT convert them. We must explicitly replace
// backslashes to handle Windows-style paths sent by clients on other platforms.

package path

import "strings"

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
