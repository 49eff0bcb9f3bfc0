package domain

// ConnState represents the APRS-IS connection lifecycle state.
//
// The lifecycle only advances forward (Disconnected, Connected, LoggedIn,
// Verified); the sole backward transition is the failure reset to
// Disconnected, which is always permitted.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnected
	StateLoggedIn
	StateVerified
)

// String returns a human-readable representation of the state.
func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnected:
		return "Connected"
	case StateLoggedIn:
		return "LoggedIn"
	case StateVerified:
		return "Verified"
	default:
		return "Unknown"
	}
}

// ValidTransition reports whether moving from one state to another is a
// legal lifecycle transition. A reset to Disconnected is valid from any
// state; every other transition must advance exactly one step forward.
func ValidTransition(from, to ConnState) bool {
	if to == StateDisconnected {
		return from != StateDisconnected
	}
	switch from {
	case StateDisconnected:
		return to == StateConnected
	case StateConnected:
		return to == StateLoggedIn
	case StateLoggedIn:
		return to == StateVerified
	default:
		return false
	}
}
