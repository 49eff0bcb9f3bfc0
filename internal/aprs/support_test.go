package aprs

import (
	"strings"
	"testing"
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// fakeTransport implements ports.Transport with scripted inbound bytes.
type fakeTransport struct {
	connected  bool
	connectErr error
	readErr    error
	writeErr   error

	pending []byte
	writes  []string
	closes  int
}

func (t *fakeTransport) Connect() error {
	if t.connectErr != nil {
		return t.connectErr
	}
	t.connected = true
	return nil
}

func (t *fakeTransport) Connected() bool { return t.connected }

func (t *fakeTransport) Read(p []byte) (int, error) {
	if !t.connected {
		return 0, domain.ErrNotConnected
	}
	if t.readErr != nil {
		return 0, t.readErr
	}
	if len(t.pending) == 0 {
		return 0, nil
	}
	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, nil
}

func (t *fakeTransport) Write(p []byte) (int, error) {
	if !t.connected {
		return 0, domain.ErrNotConnected
	}
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	t.writes = append(t.writes, string(p))
	return len(p), nil
}

func (t *fakeTransport) Close() error {
	t.connected = false
	t.closes++
	return nil
}

func (t *fakeTransport) feed(s string) {
	t.pending = append(t.pending, s...)
}

func (t *fakeTransport) sentLines() []string {
	var lines []string
	for _, w := range t.writes {
		lines = append(lines, strings.TrimSuffix(w, "\n"))
	}
	return lines
}

// fakeClock implements ports.Clock with a settable time.
type fakeClock struct {
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeContent implements ports.ContentSource with a fixed text.
type fakeContent struct {
	text  string
	err   error
	picks int
}

func (c *fakeContent) Pick() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.picks++
	return c.text, nil
}

// fakePoster records posted lines.
type fakePoster struct {
	lines []string
	err   error
}

func (p *fakePoster) PostLine(line string) error {
	if p.err != nil {
		return p.err
	}
	p.lines = append(p.lines, line)
	return nil
}

var testCreds = domain.Credentials{
	Callsign:        "N0CALL-2",
	Passcode:        "12345",
	SoftwareName:    "aprsbln",
	SoftwareVersion: "1.0.0",
	Filter:          "b/N0CALL*",
}

// newTestSession wires a session, reader and fakes over a fake transport.
func newTestSession(clock *fakeClock) (*Session, *fakeTransport) {
	transport := &fakeTransport{}
	logger := log.NewNoopLogger()
	reader := NewLineReader(transport, clock, logger)
	return NewSession(transport, clock, reader, testCreds, logger), transport
}

// verify drives the session from Disconnected to Verified.
func verify(t *testing.T, s *Session, transport *fakeTransport) {
	t.Helper()
	s.Poll() // connect + logon
	transport.feed("# logresp N0CALL-2 verified, server T2TEST\r\n")
	s.Poll() // verification
	if got := s.State(); got != domain.StateVerified {
		t.Fatalf("State() = %v, want Verified", got)
	}
}
