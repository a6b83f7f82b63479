// vt is a terminal-emulating host: it spawns a shell (or another program)
// in a pseudo-terminal, parses its output with the internal/terminal VT102
// core, and renders the result with a Bubbletea/lipgloss UI.
//
// Stack: Go · Bubbletea · lipgloss · go-pty
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/patrick-goecommerce/multiterminal/internal/app"
	"github.com/patrick-goecommerce/multiterminal/internal/config"
)

// dirtyMarkerPath returns the path to a marker file that exists only
// between a dirty startup and the next clean shutdown.
func dirtyMarkerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vt-dirty")
}

func main() {
	logPath := flag.String("o", "", "tee raw PTY output to this file (overrides config log_file)")
	flag.Parse()

	// Ambient logging has nowhere safe to go once the alt screen is up, so
	// it's discarded for the run; the raw PTY tee below is the supported
	// way to capture a session.
	log.SetOutput(io.Discard)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vt: stdout is not a terminal")
		os.Exit(1)
	}

	cfg := config.Load()
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	marker := dirtyMarkerPath()
	if marker != "" {
		if _, err := os.Stat(marker); err == nil && cfg.LogFile == "" {
			fmt.Fprintln(os.Stderr, "vt: last session did not shut down cleanly, consider setting log_file in ~/.vtrc.yaml")
		}
		_ = os.WriteFile(marker, nil, 0644)
	}

	m := app.New(cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	if err != nil {
		// Leave the marker file in place; it reads as a dirty shutdown next run.
		fmt.Fprintln(os.Stderr, "vt:", err)
		os.Exit(1)
	}

	if marker != "" {
		_ = os.Remove(marker)
	}
}
