// Package validate provides input validation for nexus requests.
//
// This package enforces security rules at the boundary between user input
// and the filesystem. Each validation function returns nil on success or a
// descriptive error on failure.
//
// Validation is minimal. We reject clearly dangerous inputs (null bytes,
// traversal, excessive sizes) and leave everything else to the filesystem.
//
// # Validation Functions
//
// Path validates and normalises workspace-relative paths.
// Content enforces the file size limit.
// LineRange checks 1-based inclusive line ranges for reads.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go:
//
//	if errors.Is(err, validate.ErrInvalidPath) {
//	    // handle invalid path
//	}
package validate
