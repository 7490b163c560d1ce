// content.go implements file content validation.
//
// Only size is checked. Files can hold any bytes; the limit stops an edit
// from pulling a multi-gigabyte file into memory.

package validate

// Content validates content size.
//
// Validation rules:
//   - Max length enforced if maxLen > 0 (0 means no limit)
func Content(content string, maxLen int64) error {
	return Size(int64(len(content)), maxLen)
}

// Size is Content for callers that only know the length, such as a stat
// taken before the file is read.
func Size(n, maxLen int64) error {
	if maxLen > 0 && n > maxLen {
		return ErrContentTooLarge
	}
	return nil
}
