// apply.go runs edit operations over decomposed lines.
//
// Apply is pure: it returns a new slice and never touches its input. Pipeline
// is a left fold of Apply over the operations, so each step can be tested on
// its own.

package edit

import (
	"fmt"
	"strings"
)

// Apply runs one operation across lines, rewriting bodies only. Indentation
// is carried over from the input decomposition unchanged.
func Apply(op Operation, lines []Line) ([]Line, error) {
	replace, err := replacer(op)
	if err != nil {
		return nil, err
	}

	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Indent: l.Indent, Body: replace(l.Body)}
	}
	return out, nil
}

// replacer returns the body rewrite for op's match mode. Regex is refused
// here, before any line is looked at.
func replacer(op Operation) (func(string) string, error) {
	switch op.Mode() {
	case LiteralCaseSensitive:
		return func(body string) string {
			if !strings.Contains(body, op.Search) {
				return body
			}
			return strings.ReplaceAll(body, op.Search, op.Replace)
		}, nil

	case LiteralCaseInsensitive:
		re, err := compileInsensitive(op.Search)
		if err != nil {
			return nil, err
		}
		return func(body string) string {
			if !re.MatchString(body) {
				return body
			}
			// Literal: "$1" in the replacement stays "$1".
			return re.ReplaceAllLiteralString(body, op.Replace)
		}, nil

	case Regex:
		return nil, fmt.Errorf("%w: regex edits are not supported (search %q)", ErrUnsupported, op.Search)

	default:
		return nil, fmt.Errorf("%w: unknown match mode %s", ErrInternal, op.Mode())
	}
}

// Pipeline applies ops in order, feeding each one the previous one's output.
// The first failure aborts the whole pipeline and no lines are returned.
func Pipeline(ops []Operation, lines []Line) ([]Line, error) {
	cur := lines
	for i, op := range ops {
		next, err := Apply(op, cur)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i+1, err)
		}
		cur = next
	}
	return cur, nil
}
