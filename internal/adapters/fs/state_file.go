// Package fs persists the daily bulletin flags to disk so the
// at-most-once-per-day guarantee survives a restart.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iot-kits/aprsbln/internal/domain"
)

const stateFileName = "bulletins.json"

// StateFileRepository implements ports.StateRepository using a JSON file.
type StateFileRepository struct {
	dir string
}

// NewStateFileRepository creates a new StateFileRepository for the given directory.
func NewStateFileRepository(dir string) *StateFileRepository {
	return &StateFileRepository{dir: dir}
}

// Load retrieves the last saved daily state from disk.
// Returns a zero state and nil error if no state file exists.
func (r *StateFileRepository) Load(ctx context.Context) (domain.DailyState, error) {
	path := filepath.Join(r.dir, stateFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DailyState{}, nil
		}
		return domain.DailyState{}, err
	}

	var state domain.DailyState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.DailyState{}, err
	}

	return state, nil
}

// Save persists the daily state atomically via write-to-temp and rename.
func (r *StateFileRepository) Save(ctx context.Context, state domain.DailyState) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := filepath.Join(r.dir, stateFileName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Path returns the full path to the state file.
func (r *StateFileRepository) Path() string {
	return filepath.Join(r.dir, stateFileName)
}
