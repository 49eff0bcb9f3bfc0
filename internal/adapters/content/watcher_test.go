package content

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/iot-kits/aprsbln/pkg/log"
)

func TestWatcherReloadsOnFileChange(t *testing.T) {
	path := writeContentFile(t, "old\n")
	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewWatcher(s, log.NewNoopLogger())
	go w.Run(ctx)

	// Give the watcher time to establish the directory watch.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(path, []byte("new one\nnew two\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.Count() == 2 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("source not reloaded, Count() = %d", s.Count())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeContentFile(t, "only\n")
	s, err := NewFileSource(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewWatcher(s, log.NewNoopLogger())
	go w.Run(ctx)

	time.Sleep(200 * time.Millisecond)

	other := path + ".bak"
	if err := os.WriteFile(other, []byte("a\nb\nc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	if got := s.Count(); got != 1 {
		t.Fatalf("Count() = %d, reload triggered by unrelated file", got)
	}
}
