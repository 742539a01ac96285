package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	gameservice "github.com/zappabad/bullrush/internal/game/service"
	"github.com/zappabad/bullrush/pkg/logger"
	"github.com/zappabad/bullrush/tui"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = seed from the clock)")
	flag.Parse()

	// Keep logs out of the TUI's screen
	log := logger.New(logger.Config{Level: "error", Pretty: false})

	cfg := gameservice.DefaultConfig()
	cfg.Seed = *seed
	session := gameservice.NewSession(cfg, log)

	model := tui.NewModel(session)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
