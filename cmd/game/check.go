package main

import (
	"context"
	"fmt"

	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
)

// checkScenes loads every scene reachable from start and decodes every image
// they draw, plus the extra paths. It returns the visited scene names.
func checkScenes(ctx context.Context, loader *system.SceneLoader, assets *asset.Cache, start string, extra ...string) ([]string, error) {
	visited, err := loader.Verify(ctx, start)
	if err != nil {
		return visited, err
	}

	paths := append([]string(nil), extra...)
	for _, name := range visited {
		loaded, err := loader.Load(ctx, name)
		if err != nil {
			return visited, err
		}
		paths = append(paths, loaded.Scene.ImagePaths()...)
	}

	if err := assets.Preload(ctx, paths...); err != nil {
		return visited, fmt.Errorf("failed to load images: %w", err)
	}
	return visited, nil
}
