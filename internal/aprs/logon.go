package aprs

import (
	"fmt"
	"strings"
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/pkg/log"
)

const (
	// verifyWindow is how long the session waits for the server's logon
	// response before giving up.
	verifyWindow = 2000 * time.Millisecond

	// logonResponseMarker starts the server's answer to the logon line,
	// e.g. "# logresp N0CALL-2 verified, server T2USA".
	logonResponseMarker = "# logresp"
)

// logonLine builds the one-frame APRS-IS logon.
func logonLine(c domain.Credentials) string {
	return fmt.Sprintf("user %s pass %s ver %s %s filter %s",
		c.Callsign, c.Passcode, c.SoftwareName, c.SoftwareVersion, c.Filter)
}

// pollVerification drains received lines looking for the logon response.
// A response containing "verified" (and not "unverified") completes the
// lifecycle at Verified. An explicit "unverified" fails the logon, as does
// a server greeting reporting the port full. Non-matching lines are ignored
// and do not reset the verification window; when the window elapses with no
// matching response the connection is torn down with ErrVerificationTimeout.
func (s *Session) pollVerification() error {
	for {
		line, ok, err := s.reader.ReadLine()
		if err != nil {
			// The reader already closed the transport; the next Poll
			// resets the lifecycle.
			return err
		}
		if !ok {
			break
		}
		if len(line) == 0 || line[0] != idComment {
			continue
		}
		s.logger.Debug("server", log.String("line", line))

		if strings.Contains(line, "full") {
			s.fail(domain.ErrConnectFailed)
			return domain.ErrConnectFailed
		}
		if !strings.HasPrefix(line, logonResponseMarker) {
			continue
		}
		if strings.Contains(line, "unverified") {
			s.fail(domain.ErrVerificationFailed)
			return domain.ErrVerificationFailed
		}
		if strings.Contains(line, "verified") {
			s.verifyDeadline = time.Time{}
			s.setState(domain.StateVerified)
			s.logger.Info("logon verified", log.String("callsign", s.creds.Callsign))
			return nil
		}
	}

	if s.clock.Now().After(s.verifyDeadline) {
		s.fail(domain.ErrVerificationTimeout)
		return domain.ErrVerificationTimeout
	}
	return nil
}
