package domain

import "errors"

// Domain errors represent error conditions in the aprsbln domain.
// These errors are returned by the engine and can be checked with errors.Is.
var (
	// ErrConnectFailed is returned when the TCP connect to the APRS-IS
	// server does not succeed. State remains Disconnected.
	ErrConnectFailed = errors.New("aprsbln: connect failed")

	// ErrVerificationFailed is returned when the server explicitly answers
	// "unverified" to the logon line.
	ErrVerificationFailed = errors.New("aprsbln: logon unverified")

	// ErrVerificationTimeout is returned when no logon response arrives
	// within the verification window.
	ErrVerificationTimeout = errors.New("aprsbln: logon verification timed out")

	// ErrConnectionLost is returned when a read or write fails mid-operation,
	// or when a stalled connection is force-closed. State resets to Disconnected.
	ErrConnectionLost = errors.New("aprsbln: connection lost")

	// ErrNotConnected is returned by line reads while the transport is closed.
	ErrNotConnected = errors.New("aprsbln: not connected")

	// ErrBulletinTooLong is returned when a bulletin payload exceeds
	// MaxBulletinBytes. The offending bulletin is discarded; the connection
	// is unaffected.
	ErrBulletinTooLong = errors.New("aprsbln: bulletin exceeds 67 bytes")

	// ErrInvalidBulletinID is returned when a bulletin ID is not a single
	// digit 0-9 or a single uppercase letter A-Z.
	ErrInvalidBulletinID = errors.New("aprsbln: invalid bulletin id")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("aprsbln: invalid configuration")
)
