package cliconfig

import "os"

// ApplyEnvConfig applies MDWRAP_* environment variables to cfg.
// These override file config but are overridden by flags (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output", os.Getenv("MDWRAP_OUTPUT"), &cfg.Output)
	s.setString("ext", os.Getenv("MDWRAP_EXT"), &cfg.Ext)
	s.setString("log-level", os.Getenv("MDWRAP_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("MDWRAP_WATCH"), &cfg.Watch)

	if err := s.setIntFromString("max-line-bytes", os.Getenv("MDWRAP_MAX_LINE_BYTES"), &cfg.MaxLineBytes); err != nil {
		return err
	}
	if err := s.setPolicy("policy", os.Getenv("MDWRAP_POLICY"), &cfg.Policy); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("MDWRAP_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	return nil
}
