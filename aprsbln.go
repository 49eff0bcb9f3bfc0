// Package aprsbln provides a lightweight agent that broadcasts two daily
// station bulletins over APRS-IS.
//
// Example usage:
//
//	cfg := aprsbln.Config{
//	    Server:       "noam.aprs2.net",
//	    Port:         14580,
//	    Callsign:     "N0CALL-2",
//	    Passcode:     "12345",
//	    BulletinFile: "/etc/aprsbln/bulletins.txt",
//	    PollInterval: 5 * time.Second,
//	    DialTimeout:  10 * time.Second,
//	}
//	if err := aprsbln.Run(context.Background(), cfg, log.NewZerologAdapter()); err != nil {
//	    log.Fatal(err)
//	}
package aprsbln

import (
	"context"

	"github.com/iot-kits/aprsbln/internal/app"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// Config holds the configuration for the bulletin agent.
type Config = app.Config

// Run assembles the agent and drives its tick loop until ctx is canceled.
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	return app.Run(ctx, cfg, logger)
}
