package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeContentFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bulletins.txt")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSourceLoadsLines(t *testing.T) {
	path := writeContentFile(t, "first\r\nsecond\n\n   \nthird\n")

	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3 (blank lines dropped)", got)
	}
}

func TestFileSourcePickCoversAllLinesAndWraps(t *testing.T) {
	path := writeContentFile(t, "a\nb\nc\n")
	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]int{}
	for i := 0; i < 6; i++ {
		line, err := s.Pick()
		if err != nil {
			t.Fatal(err)
		}
		seen[line]++
	}
	// Two full passes over a shuffled order of three lines.
	for _, want := range []string{"a", "b", "c"} {
		if seen[want] != 2 {
			t.Fatalf("line %q picked %d times, want 2 (seen: %v)", want, seen[want], seen)
		}
	}
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := writeContentFile(t, "\n\n")
	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Pick(); !errors.Is(err, ErrNoContent) {
		t.Fatalf("Pick() on empty file = %v, want ErrNoContent", err)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	if _, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileSourceReload(t *testing.T) {
	path := writeContentFile(t, "old\n")
	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("new one\nnew two\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}

	if got := s.Count(); got != 2 {
		t.Fatalf("Count() after reload = %d, want 2", got)
	}
	line, err := s.Pick()
	if err != nil {
		t.Fatal(err)
	}
	if line != "new one" && line != "new two" {
		t.Fatalf("Pick() after reload = %q", line)
	}
}
