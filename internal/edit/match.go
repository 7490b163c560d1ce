// match.go turns the flags of an Operation into one of a closed set of match
// modes and builds the matcher for the case-insensitive mode.

package edit

import (
	"fmt"
	"regexp"
)

// MatchMode is how an operation's search text is matched against a line body.
type MatchMode int

const (
	// LiteralCaseSensitive matches the search text byte for byte.
	LiteralCaseSensitive MatchMode = iota
	// LiteralCaseInsensitive matches the search text ignoring case.
	// The search text is still literal: metacharacters are escaped.
	LiteralCaseInsensitive
	// Regex is recognised so it can be refused. It is never executed.
	Regex
)

// String returns the mode's name for messages and audit detail.
func (m MatchMode) String() string {
	switch m {
	case LiteralCaseSensitive:
		return "literal"
	case LiteralCaseInsensitive:
		return "literal-ignore-case"
	case Regex:
		return "regex"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// Operation is one search/replace instruction.
type Operation struct {
	Search     string `json:"search" yaml:"search"`
	Replace    string `json:"replace" yaml:"replace"`
	Regex      bool   `json:"is_regex,omitempty" yaml:"is_regex,omitempty"`
	IgnoreCase bool   `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
}

// Mode collapses the operation's flags into a MatchMode. Regex wins over
// IgnoreCase so a regex request can never slip through as a literal one.
func (op Operation) Mode() MatchMode {
	switch {
	case op.Regex:
		return Regex
	case op.IgnoreCase:
		return LiteralCaseInsensitive
	default:
		return LiteralCaseSensitive
	}
}

// compileInsensitive builds a case-insensitive matcher for literal text.
// The text is quoted first, so "a.b" matches only "a.b" (in any case).
func compileInsensitive(search string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(search))
	if err != nil {
		return nil, fmt.Errorf("%w: building case-insensitive matcher for %q: %w", ErrInternal, search, err)
	}
	return re, nil
}
