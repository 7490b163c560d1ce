package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "foo", []string{"foo"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"lone cr kept", "a\rb\n", []string{"a\rb", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.text)); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestSplit_SameCountForLineEndings(t *testing.T) {
	lf := Split("one\ntwo\nthree\n")
	crlf := Split("one\r\ntwo\r\nthree\r\n")
	assert.Len(t, crlf, len(lf))
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		line string
		want Line
	}{
		{"", Line{}},
		{"foo", Line{Body: "foo"}},
		{"  foo", Line{Indent: "  ", Body: "foo"}},
		{"\t\tfoo bar  ", Line{Indent: "\t\t", Body: "foo bar  "}},
		{" \t x", Line{Indent: " \t ", Body: "x"}},
		{"    ", Line{Indent: "    "}},
		{"\t", Line{Indent: "\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Decompose(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.String())
		})
	}
}

func TestJoin(t *testing.T) {
	lines := []Line{{Body: "a"}, {Indent: "  ", Body: "b"}, {}}
	assert.Equal(t, "a\n  b\n", Join(lines))
	assert.Equal(t, "", Join(nil))
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"", "x", "a\nb\n", "  a\n\tb\n\n", "no newline"} {
		assert.Equal(t, text, Join(DecomposeAll(Split(text))), "text %q", text)
	}
	assert.Equal(t, "a\nb\n", Join(DecomposeAll(Split("a\r\nb\r\n"))))
}
