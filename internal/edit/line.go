// line.go splits text into lines and separates each line's indentation from
// its body. Edits only ever see the body.

package edit

import "strings"

// Line is a line split into its leading whitespace and the rest.
// Indent+Body always equals the original line.
type Line struct {
	Indent string
	Body   string
}

// String reassembles the line.
func (l Line) String() string {
	return l.Indent + l.Body
}

// Split breaks text into lines on "\n" or "\r\n". Empty text is one empty
// line, and a trailing newline produces a trailing empty line so that Join
// restores it.
func Split(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Decompose separates the maximal leading run of spaces and tabs from the
// rest of the line. A line made only of whitespace is all indentation.
func Decompose(line string) Line {
	body := strings.TrimLeft(line, " \t")
	return Line{
		Indent: line[:len(line)-len(body)],
		Body:   body,
	}
}

// DecomposeAll decomposes every line in order.
func DecomposeAll(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Decompose(l)
	}
	return out
}

// Join reassembles lines with "\n". CRLF input comes back as LF.
func Join(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Indent)
		b.WriteString(l.Body)
	}
	return b.String()
}
