// Package app assembles the adapters around the protocol engine and runs
// the cooperative tick loop that stands in for the firmware's task
// scheduler.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/iot-kits/aprsbln/internal/adapters/content"
	"github.com/iot-kits/aprsbln/internal/adapters/fs"
	"github.com/iot-kits/aprsbln/internal/adapters/tcp"
	"github.com/iot-kits/aprsbln/internal/aprs"
	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// Config carries everything needed to assemble and run the agent.
type Config struct {
	// Server is the APRS-IS tier-2 relay hostname.
	Server string
	// Port is the relay's client port.
	Port int

	Callsign        string
	Passcode        string
	SoftwareName    string
	SoftwareVersion string
	Filter          string

	// Beacon enables a position report on each verified logon.
	Beacon        bool
	Latitude      float64
	Longitude     float64
	BeaconComment string

	// BulletinFile is the line-oriented file the daily bulletins are
	// picked from.
	BulletinFile string

	// StateDir is where the daily sent flags are persisted. Empty keeps
	// them in memory only.
	StateDir string

	// PollInterval is the tick cadence. The bulletin trigger is defined
	// for a whole minute, so this must not exceed one minute.
	PollInterval time.Duration

	// DialTimeout bounds the TCP connect.
	DialTimeout time.Duration
}

// Run assembles the engine and drives it until the context is canceled.
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	if cfg.PollInterval <= 0 || cfg.PollInterval > time.Minute {
		return fmt.Errorf("%w: poll interval %s outside (0s, 1m]",
			domain.ErrInvalidConfig, cfg.PollInterval)
	}

	endpoint := domain.ServerEndpoint{Host: cfg.Server, Port: cfg.Port}
	transport := tcp.NewTransport(endpoint, cfg.DialTimeout)
	defer transport.Close()

	source, err := content.NewFileSource(cfg.BulletinFile)
	if err != nil {
		return err
	}
	watcher := content.NewWatcher(source, logger)
	go watcher.Run(ctx)

	var states ports.StateRepository
	if cfg.StateDir != "" {
		states = fs.NewStateFileRepository(cfg.StateDir)
	}

	engine := aprs.NewEngine(aprs.Config{
		Credentials: domain.Credentials{
			Callsign:        cfg.Callsign,
			Passcode:        cfg.Passcode,
			SoftwareName:    cfg.SoftwareName,
			SoftwareVersion: cfg.SoftwareVersion,
			Filter:          cfg.Filter,
		},
		Beacon:        cfg.Beacon,
		Latitude:      cfg.Latitude,
		Longitude:     cfg.Longitude,
		BeaconComment: cfg.BeaconComment,
	}, transport, ports.SystemClock{}, source, states, logger)

	logger.Info("agent started",
		log.String("server", endpoint.Addr()),
		log.String("callsign", cfg.Callsign),
		log.Duration("poll_interval", cfg.PollInterval))

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("agent stopped")
			return ctx.Err()
		case <-ticker.C:
			// Connection state advances before packets are drained,
			// packets before trigger evaluation.
			engine.PollNetwork(ctx)
			engine.PollBulletins(ctx)
		}
	}
}
