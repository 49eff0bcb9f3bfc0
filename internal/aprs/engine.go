package aprs

import (
	"context"
	"errors"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// Config holds the engine's station configuration.
type Config struct {
	// Credentials identify the station at logon.
	Credentials domain.Credentials

	// Beacon enables a one-shot position report each time the session
	// reaches Verified.
	Beacon bool

	// Latitude and Longitude locate the station for the position beacon,
	// in decimal degrees.
	Latitude  float64
	Longitude float64

	// BeaconComment trails the position report.
	BeaconComment string
}

// Engine wires the protocol components behind the two poll entry points
// driven by the external task scheduler. Within one tick, PollNetwork must
// run before PollBulletins so buffered lines are drained before trigger
// evaluation.
type Engine struct {
	session    *Session
	reader     *LineReader
	dispatcher *Dispatcher
	scheduler  *Scheduler
	logger     log.Logger

	config      Config
	frames      Frames
	wasVerified bool
}

// NewEngine assembles the engine from its collaborators. states may be nil
// to keep daily flags in memory only.
func NewEngine(cfg Config, transport ports.Transport, clock ports.Clock, content ports.ContentSource, states ports.StateRepository, logger log.Logger) *Engine {
	frames := Frames{Callsign: cfg.Credentials.Callsign}
	reader := NewLineReader(transport, clock, logger)
	session := NewSession(transport, clock, reader, cfg.Credentials, logger)
	dispatcher := NewDispatcher(frames, session, clock, logger)
	scheduler := NewScheduler(session, content, clock, states, frames, logger)

	return &Engine{
		session:    session,
		reader:     reader,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		logger:     logger,
		config:     cfg,
		frames:     frames,
	}
}

// Session exposes the connection manager, mainly for observability.
func (e *Engine) Session() *Session { return e.session }

// Dispatcher exposes the latest received data for display collaborators.
func (e *Engine) Dispatcher() *Dispatcher { return e.dispatcher }

// PollNetwork advances the connection lifecycle and drains buffered packet
// lines. Idempotent; safe to call while disconnected.
func (e *Engine) PollNetwork(ctx context.Context) {
	e.session.Poll()

	verified := e.session.State() == domain.StateVerified
	if verified && !e.wasVerified {
		e.sendBeacon()
	}
	e.wasVerified = verified
	if !verified {
		return
	}

	for {
		line, ok, err := e.reader.ReadLine()
		if err != nil {
			if !errors.Is(err, domain.ErrNotConnected) {
				e.logger.Warn("receive failed", log.Err(err))
			}
			return
		}
		if !ok {
			return
		}
		e.dispatcher.Dispatch(line)
	}
}

// PollBulletins evaluates the daily bulletin triggers. Idempotent; must be
// invoked at least once per minute. Triggers are only evaluated on a
// verified session: an unverified logon is receive-only, and a bulletin
// posted then would be silently dropped by the server with the sent flag
// already burned for the day.
func (e *Engine) PollBulletins(ctx context.Context) {
	if e.session.State() != domain.StateVerified {
		return
	}
	e.scheduler.Poll(ctx)
}

func (e *Engine) sendBeacon() {
	if !e.config.Beacon {
		return
	}
	frame := e.frames.Position(e.config.Latitude, e.config.Longitude, e.config.BeaconComment)
	if err := e.session.PostLine(frame); err != nil {
		e.logger.Warn("position beacon not sent", log.Err(err))
		return
	}
	e.logger.Info("position beacon sent",
		log.Float64("lat", e.config.Latitude),
		log.Float64("lon", e.config.Longitude))
}
