// Package diff renders differences between two versions of a file.
//
// Unified produces the patch text shown to users and LLMs. Count produces
// line-level change totals for summaries and the audit log.
package diff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	zdiff "znkr.io/diff"
	"znkr.io/diff/textdiff"
)

const separator = "==================================================================="

const noNewline = `\ No newline at end of file`

// Unified returns a unified diff of oldText against newText labelled with
// path. Identical inputs produce the header alone.
func Unified(path, oldText, newText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Index: %s\n%s\n--- %s\n+++ %s\n", path, separator, path, path)
	if oldText == newText {
		return b.String()
	}

	for _, h := range textdiff.Hunks(oldText, newText, textdiff.IndentHeuristic()) {
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", span(h.LineNoX, h.EndLineNoX), span(h.LineNoY, h.EndLineNoY))
		for _, e := range h.Edits {
			switch e.Op {
			case zdiff.Match:
				b.WriteByte(' ')
			case zdiff.Delete:
				b.WriteByte('-')
			case zdiff.Insert:
				b.WriteByte('+')
			}
			line, hasEOL := strings.CutSuffix(e.Line, "\n")
			b.WriteString(line)
			b.WriteByte('\n')
			if !hasEOL {
				b.WriteString(noNewline + "\n")
			}
		}
	}
	return b.String()
}

// span formats a zero-based half-open line range as a hunk header range.
// Empty ranges point at the line before, as patch expects.
func span(pos, end int) string {
	n := end - pos
	if n == 0 {
		return fmt.Sprintf("%d,0", pos)
	}
	return fmt.Sprintf("%d,%d", pos+1, n)
}

// Stats counts changed lines.
type Stats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// String returns the stats as "+N -M".
func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Count returns how many lines were added and removed going from oldText to
// newText.
func Count(oldText, newText string) Stats {
	dmp := diffmatchpatch.New()
	a, b, _ := dmp.DiffLinesToRunes(oldText, newText)

	var s Stats
	// Each rune stands for one line.
	for _, d := range dmp.DiffMainRunes(a, b, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += n
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		}
	}
	return s
}

// Colourise adds ANSI colours to unified diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		cyan  = "\033[36m"
		bold  = "\033[1m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.SplitAfter(d, "\n") {
		if line == "" {
			continue
		}
		text, eol := strings.CutSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "Index: "), text == separator,
			strings.HasPrefix(text, "--- "), strings.HasPrefix(text, "+++ "):
			b.WriteString(bold + text + reset)
		case strings.HasPrefix(text, "@@"):
			b.WriteString(cyan + text + reset)
		case strings.HasPrefix(text, "-"):
			b.WriteString(red + text + reset)
		case strings.HasPrefix(text, "+"):
			b.WriteString(green + text + reset)
		default:
			b.WriteString(text)
		}
		if eol {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
