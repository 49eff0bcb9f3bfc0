package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/iot-kits/aprsbln/internal/domain"
)

func TestLoadMissingStateIsZero(t *testing.T) {
	r := NewStateFileRepository(t.TempDir())

	state, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v, want nil for missing file", err)
	}
	if state != (domain.DailyState{}) {
		t.Fatalf("state = %+v, want zero", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := NewStateFileRepository(t.TempDir())
	want := domain.DailyState{AmSent: true, PmSent: false, LastResetDay: 161}

	if err := r.Save(context.Background(), want); err != nil {
		t.Fatal(err)
	}
	got, err := r.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	r := NewStateFileRepository(dir)

	if err := r.Save(context.Background(), domain.DailyState{LastResetDay: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(r.Path()); err != nil {
		t.Fatalf("state file not created: %v", err)
	}
}

func TestLoadCorruptStateFails(t *testing.T) {
	dir := t.TempDir()
	r := NewStateFileRepository(dir)
	if err := os.WriteFile(r.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
}
