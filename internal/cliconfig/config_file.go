package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers for
// values whose zero is meaningful, to make TOML friendly.
type FileConfig struct {
	Server string `toml:"server"`
	Port   int    `toml:"port"`

	Callsign        string `toml:"callsign"`
	Passcode        string `toml:"passcode"`
	SoftwareName    string `toml:"software_name"`
	SoftwareVersion string `toml:"software_version"`
	Filter          string `toml:"filter"`

	Beacon        *bool    `toml:"beacon"`
	Latitude      *float64 `toml:"latitude"`
	Longitude     *float64 `toml:"longitude"`
	BeaconComment string   `toml:"beacon_comment"`

	BulletinFile string `toml:"bulletin_file"`
	StateDir     string `toml:"state_dir"`

	PollInterval string `toml:"poll_interval"`
	DialTimeout  string `toml:"dial_timeout"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.aprsbln/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".aprsbln", "config.toml")
	}
	return ""
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("server", fc.Server, &cfg.Server)
	s.setInt("port", fc.Port, &cfg.Port)

	s.setString("callsign", fc.Callsign, &cfg.Callsign)
	s.setString("passcode", fc.Passcode, &cfg.Passcode)
	s.setString("software-name", fc.SoftwareName, &cfg.SoftwareName)
	s.setString("software-version", fc.SoftwareVersion, &cfg.SoftwareVersion)
	s.setString("filter", fc.Filter, &cfg.Filter)

	s.setBool("beacon", fc.Beacon, &cfg.Beacon)
	s.setFloat("lat", fc.Latitude, &cfg.Latitude)
	s.setFloat("lon", fc.Longitude, &cfg.Longitude)
	s.setString("beacon-comment", fc.BeaconComment, &cfg.BeaconComment)

	s.setString("bulletin-file", fc.BulletinFile, &cfg.BulletinFile)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)

	if err := s.setDuration("poll-interval", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setDuration("dial-timeout", fc.DialTimeout, &cfg.DialTimeout); err != nil {
		return err
	}

	return nil
}
