// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.vtrc.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// DefaultShell is the shell spawned for the terminal session.
	// Empty means the value of $SHELL, falling back to /bin/bash
	// (%COMSPEC% or cmd.exe on Windows).
	DefaultShell string `yaml:"default_shell"`

	// DefaultDir is the working directory for the session.
	// Empty means the current working directory at launch time.
	DefaultDir string `yaml:"default_dir"`

	// Palette names the UI theme (see ui.Themes) used for the pane border,
	// title and footer. It does not remap the terminal's indexed colors.
	Palette string `yaml:"palette"`

	// LogFile, if non-empty, tees raw PTY bytes to this path for later
	// replay/debugging. Empty disables the tee.
	LogFile string `yaml:"log_file"`

	// FrameRate caps the host's redraw rate in frames per second (1-120).
	FrameRate int `yaml:"frame_rate"`

	// ScrollbackLines is loaded and clamped to be non-negative, but no
	// component reads it: the terminal core keeps no rows of history above
	// the visible screen.
	ScrollbackLines int `yaml:"scrollback_lines"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultShell:    "",
		DefaultDir:      "",
		Palette:         "dark",
		LogFile:         "",
		FrameRate:       60,
		ScrollbackLines: 2000,
	}
}

// configPath returns the path to ~/.vtrc.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtrc.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet – write defaults for future editing
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// Apply sensible bounds
	if cfg.FrameRate < 1 {
		cfg.FrameRate = 1
	}
	if cfg.FrameRate > 120 {
		cfg.FrameRate = 120
	}
	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}

	// Validate palette name
	validPalettes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}
	if !validPalettes[cfg.Palette] {
		cfg.Palette = "dark"
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# vt configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
