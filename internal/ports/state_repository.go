package ports

import (
	"context"

	"github.com/iot-kits/aprsbln/internal/domain"
)

// StateRepository persists the daily bulletin flags so the at-most-once-per-day
// guarantee holds across restarts.
type StateRepository interface {
	// Load retrieves the last saved state.
	// Returns a zero state and nil error if no state exists.
	// Returns an error only for actual read failures.
	Load(ctx context.Context) (domain.DailyState, error)

	// Save persists the current state atomically.
	// Implementations should write to a temp file and rename to prevent
	// corruption on crash.
	Save(ctx context.Context, state domain.DailyState) error
}
