package validate

import "fmt"

// LineRange checks a 1-based inclusive line range where 0 means unset.
//
// Validation rules:
//   - Negative bounds rejected
//   - start > end rejected when both are set
func LineRange(start, end int) error {
	if start < 0 {
		return fmt.Errorf("%w: start_line must be positive", ErrInvalidRange)
	}
	if end < 0 {
		return fmt.Errorf("%w: end_line must be positive", ErrInvalidRange)
	}
	if start > 0 && end > 0 && start > end {
		return fmt.Errorf("%w: start_line (%d) cannot be greater than end_line (%d)", ErrInvalidRange, start, end)
	}
	return nil
}
