package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Palette != "dark" {
		t.Errorf("Palette = %q, want 'dark'", cfg.Palette)
	}
	if cfg.FrameRate != 60 {
		t.Errorf("FrameRate = %d, want 60", cfg.FrameRate)
	}
	if cfg.ScrollbackLines != 2000 {
		t.Errorf("ScrollbackLines = %d, want 2000", cfg.ScrollbackLines)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-config.yaml")

	original := DefaultConfig()
	original.Palette = "dracula"
	original.FrameRate = 30

	writeDefaults(path, original)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.Palette != "dracula" {
		t.Errorf("Loaded Palette = %q, want 'dracula'", loaded.Palette)
	}
	if loaded.FrameRate != 30 {
		t.Errorf("Loaded FrameRate = %d, want 30", loaded.FrameRate)
	}
}

func TestConfig_Validation_FrameRate(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{60, 60},
		{120, 120},
		{121, 120},
		{1000, 120},
	}

	for _, tt := range tests {
		got := tt.input
		if got < 1 {
			got = 1
		}
		if got > 120 {
			got = 120
		}
		if got != tt.want {
			t.Errorf("FrameRate(%d) after validation = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestConfig_Validation_PaletteFallsBackToDark(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	data := []byte("palette: not-a-real-palette\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := DefaultConfig()
	raw, _ := os.ReadFile(path)
	yaml.Unmarshal(raw, &cfg)

	validPalettes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}
	if !validPalettes[cfg.Palette] {
		cfg.Palette = "dark"
	}
	if cfg.Palette != "dark" {
		t.Errorf("Palette = %q, want fallback to 'dark'", cfg.Palette)
	}
}

func TestLoad_WritesDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Load()
	if cfg.Palette != "dark" {
		t.Errorf("Palette = %q, want 'dark'", cfg.Palette)
	}

	if _, err := os.Stat(filepath.Join(home, ".vtrc.yaml")); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	data := []byte("default_shell: /bin/zsh\npalette: nord\nframe_rate: 30\n")
	if err := os.WriteFile(filepath.Join(home, ".vtrc.yaml"), data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.DefaultShell != "/bin/zsh" {
		t.Errorf("DefaultShell = %q, want '/bin/zsh'", cfg.DefaultShell)
	}
	if cfg.Palette != "nord" {
		t.Errorf("Palette = %q, want 'nord'", cfg.Palette)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30", cfg.FrameRate)
	}
}
