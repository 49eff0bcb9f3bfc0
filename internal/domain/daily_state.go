package domain

// DailyState tracks which of the two daily bulletins have been sent and the
// day the flags were last reset. It is owned by the bulletin scheduler and
// mutated only by its trigger and rollover logic.
type DailyState struct {
	// AmSent is set once the morning bulletin has gone out today.
	AmSent bool `json:"am_sent"`

	// PmSent is set once the evening bulletin has gone out today.
	PmSent bool `json:"pm_sent"`

	// LastResetDay is the calendar-day index (day of year) the flags were
	// last cleared on.
	LastResetDay int `json:"last_reset_day"`
}

// RollOver clears both sent flags when the observed calendar day differs
// from the last reset day. It reports whether a reset happened, so the
// caller can persist the change. Flags are cleared at most once per day
// change.
func (d *DailyState) RollOver(day int) bool {
	if day == d.LastResetDay {
		return false
	}
	d.AmSent = false
	d.PmSent = false
	d.LastResetDay = day
	return true
}
