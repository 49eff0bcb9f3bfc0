package ports

// Transport is the single line-oriented TCP stream to the APRS-IS server.
//
// The engine runs on one cooperative loop, so Read must never block: when no
// bytes are pending it returns (0, nil) immediately and the caller re-polls
// on a later tick. A non-nil error from Read or Write means the stream is
// unusable and must be closed.
//
// The connection manager is the sole owner of the transport lifecycle; other
// components read and write through it but only the manager (and the stalled
// -socket recovery in the line reader) may open or close it.
type Transport interface {
	// Connect establishes the connection. It is a no-op if already
	// connected; implementations should apply their own dial timeout.
	Connect() error

	// Connected reports whether the stream is currently open.
	Connected() bool

	// Read fills p with pending bytes without blocking. It returns (0, nil)
	// when nothing is pending.
	Read(p []byte) (int, error)

	// Write sends p on the stream.
	Write(p []byte) (int, error)

	// Close tears the stream down. Closing a closed transport is a no-op.
	Close() error
}
