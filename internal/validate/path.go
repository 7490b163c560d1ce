package validate

import (
	"fmt"
	"strings"

	"github.com/jpl-au/nexus/internal/path"
)

// Path validates a workspace-relative path and returns the normalised form.
//
// Validation rules:
//   - Empty paths rejected
//   - Null bytes rejected (prevents truncation at the syscall boundary)
//   - Max length enforced if maxLen > 0 (0 means no limit)
//   - Normalisation via path.Normalise (separators, traversal, leading slashes)
func Path(p string, maxLen int) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if maxLen > 0 && len(p) > maxLen {
		return "", ErrPathTooLong
	}

	norm, err := path.Normalise(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	return norm, nil
}
