// Package cliconfig loads the aprsbln CLI configuration from a TOML file,
// APRSBLN_* environment variables and command-line flags, in increasing
// order of precedence.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
)

// DefaultServer is the recommended tier-2 relay for North America.
// Other regions: euro.aprs2.net, asia.aprs2.net, soam.aprs2.net,
// africa.aprs2.net, apan.aprs2.net (see http://www.aprs2.net/).
const DefaultServer = "noam.aprs2.net"

// Config holds CLI configuration for aprsbln.
type Config struct {
	Server string
	Port   int

	Callsign        string
	Passcode        string
	SoftwareName    string
	SoftwareVersion string
	Filter          string

	Beacon        bool
	Latitude      float64
	Longitude     float64
	BeaconComment string

	BulletinFile string
	StateDir     string

	PollInterval time.Duration
	DialTimeout  time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Server:          DefaultServer,
		Port:            domain.DefaultPort,
		SoftwareName:    "aprsbln",
		SoftwareVersion: "dev",
		PollInterval:    5 * time.Second,
		DialTimeout:     10 * time.Second,
		Passcode:        os.Getenv("APRSBLN_PASSCODE"),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Callsign == "" {
		return fmt.Errorf("%w: callsign is required", domain.ErrInvalidConfig)
	}
	c.Callsign = strings.ToUpper(strings.TrimSpace(c.Callsign))

	if c.Passcode == "" {
		return fmt.Errorf("%w: passcode is required", domain.ErrInvalidConfig)
	}

	if c.BulletinFile == "" {
		return fmt.Errorf("%w: bulletin-file is required", domain.ErrInvalidConfig)
	}

	if c.Server == "" {
		c.Server = DefaultServer
	}
	if c.Port <= 0 {
		c.Port = domain.DefaultPort
	}

	if c.Filter == "" {
		// Default to hearing traffic addressed to any of the station's SSIDs.
		base, _, _ := strings.Cut(c.Callsign, "-")
		c.Filter = "b/" + base + "*"
	}

	if c.StateDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			c.StateDir = h + "/.aprsbln"
		}
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", domain.ErrInvalidConfig, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", domain.ErrInvalidConfig, c.Longitude)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidConfig)
	}
	// The bulletin trigger fires for a whole calendar minute; polling less
	// often than that can miss it entirely.
	if c.PollInterval > time.Minute {
		return fmt.Errorf("%w: poll interval must not exceed one minute", domain.ErrInvalidConfig)
	}
	if c.DialTimeout <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", domain.ErrInvalidConfig)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value from a pointer if not nil and flag not changed.
// A pointer distinguishes an absent value from a legitimate zero coordinate.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
