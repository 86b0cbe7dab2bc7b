package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/scenehop/configs"
	"github.com/younwookim/scenehop/internal/application/game"
	"github.com/younwookim/scenehop/internal/application/replay"
	"github.com/younwookim/scenehop/internal/application/scene/playing"
	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
	"github.com/younwookim/scenehop/internal/infrastructure/watch"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	sceneFlag := flag.String("scene", "", "Start scene (default: scenes.start from settings)")
	watchFlag := flag.Bool("watch", false, "Reload the current scene when its file changes (needs -config)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	headless := flag.Bool("headless", false, "Run -replay without a window and print the result")
	checkFlag := flag.Bool("check", false, "Load every scene and image reachable from the start scene and exit")
	flag.Parse()

	loader := newConfigLoader(*configDir)
	cfg, err := loader.LoadSettings()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	start := cfg.Scenes.Start
	if *sceneFlag != "" {
		start = *sceneFlag
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("failed to load replay: %v", err)
		}
		start = data.Scene
	}

	assets := asset.NewCache(loader.FS())
	sceneLoader := system.NewSceneLoader(loader, system.NewSceneBuilder(cfg), assets, cfg.Scenes.LoadTimeout)
	sim := system.NewSimulation(cfg, sceneLoader)

	if *checkFlag {
		visited, err := checkScenes(context.Background(), sceneLoader, assets, start, cfg.Player.SpriteSheet)
		if err != nil {
			log.Fatalf("scene check failed: %v", err)
		}
		fmt.Printf("%d scenes ok: %v\n", len(visited), visited)
		return
	}

	if *headless {
		if data == nil {
			log.Fatalf("-headless needs -replay")
		}
		sum, err := runHeadless(sim, data, cfg.Scenes.LoadTimeout)
		if err != nil {
			log.Fatalf("replay failed: %v", err)
		}
		printSummary(os.Stdout, sum)
		return
	}

	opts := playing.Options{
		RecordPath: *recordFlag,
		Sprites:    assets.Resolve(cfg.Player.SpriteSheet),
	}
	if data != nil {
		opts.Input = &playing.ReplayInput{Replayer: replay.NewReplayer(*data)}
		log.Printf("replaying %s (%d frames)", *replayFlag, len(data.Frames))
	}
	if *watchFlag {
		if *configDir == "" {
			log.Printf("-watch needs -config; hot reload disabled")
		} else {
			w, err := watch.NewWatcher(filepath.Join(*configDir, cfg.Scenes.Dir))
			if err != nil {
				log.Fatalf("failed to watch scenes: %v", err)
			}
			defer func() { _ = w.Close() }()
			opts.Changes = w
			log.Printf("watching %s", filepath.Join(*configDir, cfg.Scenes.Dir))
		}
	}

	scn, err := playing.New(cfg, sim, start, opts)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}
	g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.TPS)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.WindowScale,
		cfg.Display.ScreenHeight*cfg.Display.WindowScale)
	ebiten.SetWindowTitle("scenehop")
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newConfigLoader reads configs from dir, or from the embedded copy when dir is empty
func newConfigLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	return config.NewFSLoader(configs.FS, "configs")
}
