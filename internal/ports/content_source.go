package ports

// ContentSource supplies bulletin text. Ownership of the content storage is
// external; the engine only asks for the next text to broadcast.
type ContentSource interface {
	// Pick returns the next bulletin text. Successive calls advance through
	// the available content in implementation-defined order.
	Pick() (string, error)
}
