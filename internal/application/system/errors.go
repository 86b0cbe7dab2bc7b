package system

import (
	"errors"
	"fmt"
)

// ErrMissingTarget is returned for a teleporter without a target scene
var ErrMissingTarget = errors.New("teleporter has no target scene")

// SceneLoadError reports a scene that could not be read or built
type SceneLoadError struct {
	Scene string
	Err   error
}

func (e *SceneLoadError) Error() string {
	return fmt.Sprintf("failed to load scene %s: %v", e.Scene, e.Err)
}

func (e *SceneLoadError) Unwrap() error {
	return e.Err
}

// InvalidSceneReference reports a teleporter whose target failed to load
type InvalidSceneReference struct {
	From   string
	Target string
	Err    error
}

func (e *InvalidSceneReference) Error() string {
	return fmt.Sprintf("scene %s teleports to %s: %v", e.From, e.Target, e.Err)
}

func (e *InvalidSceneReference) Unwrap() error {
	return e.Err
}
