package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/henri123lemoine/etch/internal/config"
	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/sketch"
	"github.com/henri123lemoine/etch/internal/window"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "path to the config file")
	debugFlag := flag.Bool("debug", false, "write a debug log")
	flag.Parse()

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	warnings := cfg.Validate()
	cfg.Normalize()
	for _, w := range warnings {
		log.Printf("config: %s", w)
	}

	if *debugFlag {
		logPath := cfg.Debug.LogFile
		if logPath == "" {
			logPath = debug.DefaultPath()
		}
		if err := debug.Enable(logPath); err != nil {
			log.Fatalf("enable debug log: %v", err)
		}
		defer debug.Close()
	}

	ctrl := sketch.New(sketch.WithDefaultColumns(cfg.Grid.DefaultColumns))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(window.New(ctrl)); err != nil {
		debug.Close()
		log.Fatal(err)
	}
}
