// Command dawn is a terminal Markdown editor: a live-rendered preview
// pane over a Markdown document, driven by the internal/editor core.
//
// Usage:
//
//	dawn [--config path/to/dawn.yaml] <file.md>
//
// If no --config flag is given, dawn looks for dawn.yaml next to the
// target file and falls back to internal/config's defaults when
// neither exists.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/andrewmd5/dawn-sub002/internal/config"
	"github.com/andrewmd5/dawn-sub002/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to dawn.yaml (default: dawn.yaml next to the target file)")
	debug := flag.Bool("debug", os.Getenv("DAWN_DEBUG") == "1", "enable debug logging")
	flag.Parse()
	logging.DebugEnabled = *debug

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: dawn [--config path] <file.md>")
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dawn: stdout is not a terminal")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(filepath.Dir(path), "dawn.yaml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		cfg = config.Default()
	}

	model, err := New(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening %s: %v\n", path, err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if watcher, err := config.Watch(cfgPath, func(cfg config.Config) {
		p.Send(configReloadedMsg{cfg: cfg})
	}); err == nil {
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
