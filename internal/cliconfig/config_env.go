package cliconfig

import "os"

// ApplyEnvConfig applies APRSBLN_* environment variables to the Config.
// Environment values override the file config but are overridden by flags
// that were explicitly set (the changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("server", os.Getenv("APRSBLN_SERVER"), &cfg.Server)
	if err := s.setIntFromString("port", os.Getenv("APRSBLN_PORT"), &cfg.Port); err != nil {
		return err
	}

	s.setString("callsign", os.Getenv("APRSBLN_CALLSIGN"), &cfg.Callsign)
	s.setString("passcode", os.Getenv("APRSBLN_PASSCODE"), &cfg.Passcode)
	s.setString("filter", os.Getenv("APRSBLN_FILTER"), &cfg.Filter)

	s.setBoolFromString("beacon", os.Getenv("APRSBLN_BEACON"), &cfg.Beacon)
	if err := s.setFloatFromString("lat", os.Getenv("APRSBLN_LAT"), &cfg.Latitude); err != nil {
		return err
	}
	if err := s.setFloatFromString("lon", os.Getenv("APRSBLN_LON"), &cfg.Longitude); err != nil {
		return err
	}
	s.setString("beacon-comment", os.Getenv("APRSBLN_BEACON_COMMENT"), &cfg.BeaconComment)

	s.setString("bulletin-file", os.Getenv("APRSBLN_BULLETIN_FILE"), &cfg.BulletinFile)
	s.setString("state-dir", os.Getenv("APRSBLN_STATE_DIR"), &cfg.StateDir)

	if err := s.setDuration("poll-interval", os.Getenv("APRSBLN_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setDuration("dial-timeout", os.Getenv("APRSBLN_DIAL_TIMEOUT"), &cfg.DialTimeout); err != nil {
		return err
	}

	return nil
}
