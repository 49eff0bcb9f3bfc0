package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/iot-kits/aprsbln/internal/app"
	"github.com/iot-kits/aprsbln/internal/cliconfig"
	"github.com/iot-kits/aprsbln/pkg/log"
)

const helpDescription = `
Broadcast two daily station bulletins over APRS-IS.

Highlights:
  - Connects to a tier-2 relay, logs on with your passcode and keeps the
    session alive with automatic reconnects and stalled-socket recovery.
  - Picks bulletin texts from a plain file, shuffled, one per line; edits
    to the file are picked up on the fly.
  - Morning (08:00) and evening (20:00) bulletins fire at most once per
    calendar day, even across restarts.
  - Configure via file ($HOME/.aprsbln/config.toml), APRSBLN_* env, or flags.

Get a passcode for your callsign before first use; unverified logons are
receive-only and bulletins will be rejected by the network.
`

var exampleUsage = strings.TrimSpace(`
  aprsbln --callsign N0CALL-2 --passcode 12345 --bulletin-file /etc/aprsbln/bulletins.txt
  aprsbln --config $HOME/.aprsbln/config.toml --server euro.aprs2.net
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()
	zl := logger.Logger()

	root := &cobra.Command{
		Use:     "aprsbln",
		Short:   "Broadcast two daily station bulletins over APRS-IS",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first, then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if cfg.SoftwareVersion == "dev" {
				cfg.SoftwareVersion = getVersion()
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log configuration (masking the passcode)
			logCfg := cfg
			if len(logCfg.Passcode) > 0 {
				logCfg.Passcode = "*****"
			}
			zl.Info().Interface("config", logCfg).Msg("configuration")

			runCfg := app.Config{
				Server:          cfg.Server,
				Port:            cfg.Port,
				Callsign:        cfg.Callsign,
				Passcode:        cfg.Passcode,
				SoftwareName:    cfg.SoftwareName,
				SoftwareVersion: cfg.SoftwareVersion,
				Filter:          cfg.Filter,
				Beacon:          cfg.Beacon,
				Latitude:        cfg.Latitude,
				Longitude:       cfg.Longitude,
				BeaconComment:   cfg.BeaconComment,
				BulletinFile:    cfg.BulletinFile,
				StateDir:        cfg.StateDir,
				PollInterval:    cfg.PollInterval,
				DialTimeout:     cfg.DialTimeout,
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.Run(ctx, runCfg, logger); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.aprsbln/config.toml)")
	root.Flags().StringVar(&cfg.Server, "server", cfg.Server, "APRS-IS tier-2 server hostname")
	root.Flags().IntVar(&cfg.Port, "port", cfg.Port, "APRS-IS client port")

	root.Flags().StringVar(&cfg.Callsign, "callsign", cfg.Callsign, "callsign-SSID used as sender address")
	root.Flags().StringVar(&cfg.Passcode, "passcode", cfg.Passcode, "APRS-IS passcode for the callsign")
	root.Flags().StringVar(&cfg.Filter, "filter", cfg.Filter, "server-side filter expression (default: b/<callsign>*)")

	root.Flags().BoolVar(&cfg.Beacon, "beacon", cfg.Beacon, "send a position report on each verified logon")
	root.Flags().Float64Var(&cfg.Latitude, "lat", cfg.Latitude, "station latitude in decimal degrees")
	root.Flags().Float64Var(&cfg.Longitude, "lon", cfg.Longitude, "station longitude in decimal degrees")
	root.Flags().StringVar(&cfg.BeaconComment, "beacon-comment", cfg.BeaconComment, "comment text for the position report")

	root.Flags().StringVar(&cfg.BulletinFile, "bulletin-file", cfg.BulletinFile, "file of bulletin texts, one per line")
	root.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for bulletins.json (default: $HOME/.aprsbln)")

	root.Flags().DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "engine tick cadence (at most 1m)")
	root.Flags().DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "TCP connect timeout")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("aprsbln")
		os.Exit(1)
	}
}
