package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/scenehop/configs"
	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	sceneFlag := flag.String("scene", "", "Start scene (default: scenes.start from settings)")
	logFile := flag.String("log", "", "Write logs to this file (default: discard)")
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	loader := config.NewFSLoader(configs.FS, "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadSettings()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("failed to load settings: %v", err)
	}

	start := cfg.Scenes.Start
	if *sceneFlag != "" {
		start = *sceneFlag
	}

	assets := asset.NewCache(loader.FS())
	sceneLoader := system.NewSceneLoader(loader, system.NewSceneBuilder(cfg), assets, cfg.Scenes.LoadTimeout)
	defer sceneLoader.Close()
	sim := system.NewSimulation(cfg, sceneLoader)

	loaded, err := sceneLoader.Load(context.Background(), start)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("failed to load start scene: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	newTerminal(screen, cfg, sim, loaded, assets.Resolve(cfg.Player.SpriteSheet)).run()
}
