// Package content implements the ContentSource port over a text file of
// bulletin lines, one per line. Line order is shuffled at load time and
// picks walk the shuffled order sequentially, wrapping at the end, so the
// station does not broadcast the file in the same order every day.
package content

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// ErrNoContent is returned by Pick when the file held no usable lines.
var ErrNoContent = errors.New("content: no bulletin lines loaded")

// FileSource implements ports.ContentSource backed by a line-oriented file.
// It is safe for concurrent use; the fsnotify watcher reloads it from its
// own goroutine while the engine picks from the tick loop.
type FileSource struct {
	path string

	mu    sync.Mutex
	lines []string
	order []int
	next  int
}

// NewFileSource creates a FileSource and performs the initial load.
func NewFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the content file path.
func (s *FileSource) Path() string { return s.path }

// Reload re-reads the file, drops blank lines and reshuffles the pick order.
func (s *FileSource) Reload() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read content file: %w", err)
	}

	var lines []string
	for _, l := range strings.Split(string(b), "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}

	order := rand.Perm(len(lines))

	s.mu.Lock()
	s.lines = lines
	s.order = order
	s.next = 0
	s.mu.Unlock()
	return nil
}

// Pick returns the next bulletin text in shuffled order, wrapping at the end.
func (s *FileSource) Pick() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return "", ErrNoContent
	}
	line := s.lines[s.order[s.next]]
	s.next = (s.next + 1) % len(s.order)
	return line, nil
}

// Count returns the number of loaded lines.
func (s *FileSource) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
