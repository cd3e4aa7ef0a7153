package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/etch/internal/app"
	"github.com/henri123lemoine/etch/internal/config"
	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/sketch"
	"github.com/henri123lemoine/etch/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "path to the config file")
	debugFlag := flag.Bool("debug", false, "write a debug log")
	initConfig := flag.Bool("init-config", false, "write a commented default config file and exit")
	flag.Parse()

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(*configPath)
		return
	}

	// Load configuration
	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	warnings := cfg.Validate()
	cfg.Normalize()
	printWarnings(os.Stderr, warnings)

	if *debugFlag {
		logPath := cfg.Debug.LogFile
		if logPath == "" {
			logPath = debug.DefaultPath()
		}
		if err := debug.Enable(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
		for _, w := range warnings {
			debug.Log("config warning: %s", w)
		}
	}

	ui.ApplyTheme(cfg.UI.Theme)

	// Create and run the application
	ctrl := sketch.New(sketch.WithDefaultColumns(cfg.Grid.DefaultColumns))
	model := app.New(cfg, ctrl).WithWarnings(warnings)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

// printWarnings reports config warnings before the alt screen hides stderr.
func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: config: %s\n", warning)
	}
}
