package aprs

import (
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

const (
	// MaxLineBytes bounds a single received packet line.
	MaxLineBytes = 512

	// idleTimeout is how long the reader tolerates a connected transport
	// delivering zero bytes before force-closing it to recover a stalled
	// socket.
	idleTimeout = 1500 * time.Millisecond
)

// LineReader assembles newline-delimited packet lines from the transport
// without blocking. Incomplete lines are buffered across calls; a line is
// terminated by '\n' or by reaching MaxLineBytes, whichever comes first.
//
// The reader also carries the stalled-socket watchdog: when the transport
// stays connected but delivers no bytes for longer than idleTimeout, the
// transport is force-closed and the deadline cleared.
type LineReader struct {
	transport ports.Transport
	clock     ports.Clock
	logger    log.Logger

	buf          [MaxLineBytes]byte
	n            int
	idleDeadline time.Time
}

// NewLineReader creates a LineReader over the given transport.
func NewLineReader(transport ports.Transport, clock ports.Clock, logger log.Logger) *LineReader {
	return &LineReader{
		transport: transport,
		clock:     clock,
		logger:    logger,
	}
}

// ReadLine returns the next complete line, with ok reporting whether a line
// was available. It never blocks: when no full line is pending it returns
// ("", false, nil) immediately and resumes on a later call.
//
// ErrNotConnected is returned while the transport is closed.
// ErrConnectionLost is returned when a read fails or when the idle watchdog
// closes a stalled transport.
func (r *LineReader) ReadLine() (line string, ok bool, err error) {
	if !r.transport.Connected() {
		r.reset()
		return "", false, domain.ErrNotConnected
	}

	for r.n < MaxLineBytes {
		var b [1]byte
		nr, err := r.transport.Read(b[:])
		if err != nil {
			r.transport.Close()
			r.reset()
			return "", false, domain.ErrConnectionLost
		}
		if nr == 0 {
			now := r.clock.Now()
			if r.idleDeadline.IsZero() {
				r.idleDeadline = now.Add(idleTimeout)
				return "", false, nil
			}
			if now.After(r.idleDeadline) {
				r.logger.Warn("no data within idle timeout, closing transport",
					log.Duration("timeout", idleTimeout))
				r.transport.Close()
				r.reset()
				return "", false, domain.ErrConnectionLost
			}
			return "", false, nil
		}

		// Bytes are flowing again.
		r.idleDeadline = time.Time{}

		if b[0] == '\n' {
			return r.take(), true, nil
		}
		r.buf[r.n] = b[0]
		r.n++
	}

	// Capacity reached without a newline: hand back what fits.
	return r.take(), true, nil
}

// take returns the buffered line, stripping a trailing '\r', and resets the
// buffer for the next line.
func (r *LineReader) take() string {
	n := r.n
	if n > 0 && r.buf[n-1] == '\r' {
		n--
	}
	line := string(r.buf[:n])
	r.n = 0
	return line
}

func (r *LineReader) reset() {
	r.n = 0
	r.idleDeadline = time.Time{}
}
