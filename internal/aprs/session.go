package aprs

import (
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// Session owns the transport handle and the four-state connection lifecycle:
// Disconnected, Connected, LoggedIn, Verified. State only advances through
// valid transitions; any I/O failure closes the transport and resets to
// Disconnected. Reconnection is not automatic here; it resumes when the
// next tick finds the session Disconnected and calls Connect again.
type Session struct {
	transport ports.Transport
	clock     ports.Clock
	reader    *LineReader
	logger    log.Logger
	creds     domain.Credentials

	state          domain.ConnState
	verifyDeadline time.Time
}

// NewSession creates a Session over the given transport. The reader must
// wrap the same transport; during logon it is the source of server
// response lines.
func NewSession(transport ports.Transport, clock ports.Clock, reader *LineReader, creds domain.Credentials, logger log.Logger) *Session {
	return &Session{
		transport: transport,
		clock:     clock,
		reader:    reader,
		logger:    logger,
		creds:     creds,
		state:     domain.StateDisconnected,
	}
}

// State returns the current connection state.
func (s *Session) State() domain.ConnState {
	return s.state
}

// Poll advances the connection lifecycle. Call once per tick, before
// draining packets.
func (s *Session) Poll() {
	// A transport closed out from under us (stalled-socket recovery, or a
	// failure noticed elsewhere) resets the lifecycle.
	if s.state != domain.StateDisconnected && !s.transport.Connected() {
		s.logger.Warn("transport closed, resetting session", log.Err(domain.ErrConnectionLost))
		s.setState(domain.StateDisconnected)
		s.verifyDeadline = time.Time{}
		return
	}

	switch s.state {
	case domain.StateDisconnected:
		if err := s.Connect(); err != nil {
			s.logger.Warn("connect failed", log.Err(err))
		}
	case domain.StateLoggedIn:
		if err := s.pollVerification(); err != nil {
			s.logger.Warn("logon verification failed", log.Err(err))
		}
	}
}

// Connect establishes the TCP connection and immediately sends the logon
// line, entering LoggedIn. It is idempotent: a no-op when the session is
// already Connected or beyond. On failure the state remains Disconnected.
func (s *Session) Connect() error {
	if s.state != domain.StateDisconnected {
		return nil
	}

	if err := s.transport.Connect(); err != nil {
		return domain.ErrConnectFailed
	}
	s.setState(domain.StateConnected)

	if err := s.post(logonLine(s.creds)); err != nil {
		return err
	}
	s.setState(domain.StateLoggedIn)
	s.verifyDeadline = s.clock.Now().Add(verifyWindow)
	s.logger.Info("logon sent",
		log.String("callsign", s.creds.Callsign),
		log.String("filter", s.creds.Filter))
	return nil
}

// PostLine writes line plus a newline terminator when the session is
// Connected, LoggedIn or Verified. While Disconnected it performs no I/O
// and reports ErrConnectionLost.
func (s *Session) PostLine(line string) error {
	if s.state == domain.StateDisconnected {
		return domain.ErrConnectionLost
	}
	return s.post(line)
}

func (s *Session) post(line string) error {
	if _, err := s.transport.Write(append([]byte(line), '\n')); err != nil {
		s.fail(err)
		return domain.ErrConnectionLost
	}
	return nil
}

// fail closes the transport and resets the lifecycle after an I/O failure.
func (s *Session) fail(cause error) {
	s.transport.Close()
	s.verifyDeadline = time.Time{}
	s.setState(domain.StateDisconnected)
	s.logger.Warn("connection reset", log.Err(cause))
}

func (s *Session) setState(next domain.ConnState) {
	if s.state == next {
		return
	}
	if !domain.ValidTransition(s.state, next) {
		s.logger.Error("invalid state transition",
			log.String("from", s.state.String()),
			log.String("to", next.String()))
		return
	}
	prev := s.state
	s.state = next
	s.logger.Debug("connection state",
		log.String("from", prev.String()),
		log.String("to", next.String()))
}
