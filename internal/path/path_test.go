package path

import (
	"errors"
	"testing"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		// Basic paths
		{"main.go", "main.go", nil},
		{"src/app/main.go", "src/app/main.go", nil},
		{"notes.md", "notes.md", nil},

		// Separators and slashes
		{"src\\app\\main.go", "src/app/main.go", nil},
		{"/src/main.go", "src/main.go", nil},
		{"src/app/", "src/app", nil},
		{"./src//main.go", "src/main.go", nil},

		// Traversal that stays inside resolves cleanly
		{"src/../README", "README", nil},
		{"a..b.txt", "a..b.txt", nil},

		// Escapes
		{"..", "", ErrOutside},
		{"../secret", "", ErrOutside},
		{"src/../../secret", "", ErrOutside},
		{"..\\secret", "", ErrOutside},

		// Invalid paths
		{"", "", ErrInvalid},
		{".", "", ErrInvalid},
		{"/", "", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalise(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalise(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Normalise(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("a\\b/c"); got != "a/b/c" {
		t.Errorf("Display() = %q, want %q", got, "a/b/c")
	}
}
