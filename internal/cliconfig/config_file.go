package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jcorbin/mdwrap/internal/wrapio"
)

// LocalConfigName is the project-local config file, searched for in the
// working directory and its parents.
const LocalConfigName = ".mdwrap.toml"

// FileConfig mirrors Config but uses strings for durations and the policy to
// make TOML friendly.
type FileConfig struct {
	Output       string `toml:"output"`
	Ext          string `toml:"ext"`
	Policy       string `toml:"policy"`
	MaxLineBytes int    `toml:"max_line_bytes"`
	LogLevel     string `toml:"log_level"`
	Watch        *bool  `toml:"watch"`
	Debounce     string `toml:"debounce"`
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

// DefaultConfigPath returns the config file to use when none was given: the
// nearest LocalConfigName, else ~/.mdwrap/config.toml if the user home
// directory is accessible.
func DefaultConfigPath() string {
	if info, path, err := wrapio.FindWDFile(LocalConfigName); err == nil && info != nil && !info.IsDir() {
		return path
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mdwrap", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output", fc.Output, &cfg.Output)
	s.setString("ext", fc.Ext, &cfg.Ext)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("max-line-bytes", fc.MaxLineBytes, &cfg.MaxLineBytes)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setPolicy("policy", fc.Policy, &cfg.Policy); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
