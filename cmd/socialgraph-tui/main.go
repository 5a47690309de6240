// Command socialgraph-tui seeds a network and browses it interactively.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/socialgraph/pkg/config"
	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/network"
	"github.com/dd0wney/socialgraph/pkg/seed"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	seedPath := flag.String("seed", "", "YAML fixture of people and friendships (default: built-in demo)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "socialgraph-tui: %v\n", err)
		os.Exit(1)
	}
	if *seedPath != "" {
		cfg.SeedFile = *seedPath
	}

	// Notices and logs would corrupt the alt screen
	logger := logging.NewJSONLogger(io.Discard, cfg.Level())

	fixture := seed.Default()
	if cfg.SeedFile != "" {
		if fixture, err = seed.Load(cfg.SeedFile); err != nil {
			fmt.Fprintf(os.Stderr, "socialgraph-tui: %v\n", err)
			os.Exit(1)
		}
	}

	net := network.New(
		network.WithDiagnostics(io.Discard),
		network.WithLogger(logger),
	)
	seed.Apply(net, fixture)

	p := tea.NewProgram(initialModel(net.Snapshot(), net.Stats()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "socialgraph-tui: %v\n", err)
		os.Exit(1)
	}
}
