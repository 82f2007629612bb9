package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the cmpatch configuration.
type Config struct {
	// Tool is the cm client binary name or path.
	Tool string `json:"tool"`
	// Split selects how cm output is tokenized: "fields" or "lines".
	Split string `json:"split"`
	// ForwardCompare passes --compare through to cm diff.
	ForwardCompare bool `json:"forwardCompare"`
	// StrictDestination stops the run on an invalid destination spec.
	StrictDestination bool `json:"strictDestination"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel"`
	// LogFile receives diagnostic logs. Empty disables logging.
	LogFile string `json:"logFile,omitempty"`
}

// fileConfig mirrors Config with pointer bools so an absent key does not
// reset a default.
type fileConfig struct {
	Tool              string `json:"tool"`
	Split             string `json:"split"`
	ForwardCompare    *bool  `json:"forwardCompare"`
	StrictDestination *bool  `json:"strictDestination"`
	LogLevel          string `json:"logLevel"`
	LogFile           string `json:"logFile"`
}

var validSplits = map[string]bool{"fields": true, "lines": true}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Tool:     "cm",
		Split:    "fields",
		LogLevel: "warn",
	}
}

// ConfigDir returns the platform-appropriate config directory for cmpatch.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cmpatch"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "cmpatch"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "cmpatch"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "cmpatch"), nil
	default:
		return filepath.Join(home, ".config", "cmpatch"), nil
	}
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func loadFile(path string, explicit bool) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// path names the config file; empty means ConfigPath, where a missing file
// is not an error. The overrides map comes from CLI flags (only set values).
func Load(path string, overrides map[string]string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	fc, err := loadFile(path, explicit)
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fc)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	for k, v := range overrides {
		if err := SetField(&cfg, k, v); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Tool != "" {
		dst.Tool = src.Tool
	}
	if src.Split != "" {
		dst.Split = src.Split
	}
	if src.ForwardCompare != nil {
		dst.ForwardCompare = *src.ForwardCompare
	}
	if src.StrictDestination != nil {
		dst.StrictDestination = *src.StrictDestination
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}

var envKeys = map[string]string{
	"CMPATCH_TOOL":            "tool",
	"CMPATCH_SPLIT":           "split",
	"CMPATCH_FORWARD_COMPARE": "forwardCompare",
	"CMPATCH_STRICT":          "strictDestination",
	"CMPATCH_LOG_LEVEL":       "logLevel",
	"CMPATCH_LOG_FILE":        "logFile",
}

func mergeEnv(cfg *Config) error {
	for env, key := range envKeys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "tool":
		cfg.Tool = value
	case "split":
		cfg.Split = value
	case "forwardCompare":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("forwardCompare must be a boolean: %w", err)
		}
		cfg.ForwardCompare = b
	case "strictDestination":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strictDestination must be a boolean: %w", err)
		}
		cfg.StrictDestination = b
	case "logLevel":
		cfg.LogLevel = value
	case "logFile":
		cfg.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Validate checks that enumerated fields hold known values.
func (c Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("tool must not be empty")
	}
	if !validSplits[c.Split] {
		return fmt.Errorf("unsupported split mode: %s", c.Split)
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
	return nil
}
