package aprs

import (
	"strings"
	"time"

	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// minPacketLen filters out fragments too short to carry any payload.
const minPacketLen = 10

// LinePoster is the outbound line sink. *Session implements it.
type LinePoster interface {
	PostLine(line string) error
}

// Dispatcher classifies received packet lines and retains the latest
// weather and telemetry lines for display collaborators. Addressed messages
// carrying a message ID are acknowledged on the wire.
//
// Nothing is persisted; only the single latest line per kind is held in
// memory, replaced as newer data arrives.
type Dispatcher struct {
	frames Frames
	post   LinePoster
	clock  ports.Clock
	logger log.Logger

	weather   string
	weatherAt time.Time
	telemetry string
}

// NewDispatcher creates a Dispatcher. post is used to send acknowledgments
// and is normally the Session.
func NewDispatcher(frames Frames, post LinePoster, clock ports.Clock, logger log.Logger) *Dispatcher {
	return &Dispatcher{
		frames: frames,
		post:   post,
		clock:  clock,
		logger: logger,
	}
}

// Dispatch consumes one received line. Server comments and short fragments
// are dropped.
func (d *Dispatcher) Dispatch(line string) {
	if len(line) <= minPacketLen || line[0] == idComment {
		return
	}

	if strings.IndexByte(line[1:], idWeather) >= 0 {
		if d.weather != line {
			d.weather = line
			d.weatherAt = d.clock.Now()
		}
	}
	if strings.Contains(line, "T#") {
		d.telemetry = line
	}
	if strings.Contains(line, "::") {
		d.handleMessage(line)
	}
}

// Weather returns the latest weather line and when it was first received.
func (d *Dispatcher) Weather() (string, time.Time) {
	return d.weather, d.weatherAt
}

// Telemetry returns the latest telemetry line.
func (d *Dispatcher) Telemetry() string {
	return d.telemetry
}

// handleMessage inspects an addressed message frame,
// SRC>PATH::ADDRESSEE:text{msgID, and acks messages directed at our
// callsign that carry a message ID.
func (d *Dispatcher) handleMessage(line string) {
	src, _, found := strings.Cut(line, ">")
	if !found || src == "" {
		return
	}

	i := strings.Index(line, "::")
	body := line[i+2:]
	// Addressee field is exactly nine characters followed by ':'.
	if len(body) < 10 || body[9] != ':' {
		return
	}
	addressee := strings.TrimRight(body[:9], " ")
	if !strings.EqualFold(addressee, d.frames.Callsign) {
		return
	}

	text := body[10:]
	j := strings.LastIndexByte(text, '{')
	if j < 0 || j == len(text)-1 {
		return
	}
	msgID := text[j+1:]

	if err := d.post.PostLine(d.frames.Ack(src, msgID)); err != nil {
		d.logger.Warn("ack not sent", log.String("to", src), log.Err(err))
		return
	}
	d.logger.Info("message acked", log.String("to", src), log.String("msg_id", msgID))
}
