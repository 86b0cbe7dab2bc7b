package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file at the config root
const SettingsFile = "settings.yaml"

// ErrEmptySceneName is returned when a scene is requested without a name
var ErrEmptySceneName = errors.New("empty scene name")

// Loader loads settings and scene documents using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
	sceneDir string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
		sceneDir: "scenes",
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
		sceneDir: "scenes",
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads settings.yaml on top of DefaultSettings.
// A missing file yields the defaults.
func (l *Loader) LoadSettings() (*Settings, error) {
	cfg := DefaultSettings()

	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path.Join(l.basePath, SettingsFile), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	l.sceneDir = cfg.Scenes.Dir
	return cfg, nil
}

// LoadScene loads a scene JSON file by name.
// The name may omit the .json extension.
func (l *Loader) LoadScene(ctx context.Context, name string) (*SceneDocument, error) {
	file, err := SceneFile(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, path.Join(l.sceneDir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s from %s: %w", name, path.Join(l.basePath, l.sceneDir), err)
	}

	doc, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}

	return doc, nil
}

// SceneFile normalizes a scene name to its file name
func SceneFile(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptySceneName
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if path.Ext(name) == "" {
		name += ".json"
	}
	return name, nil
}
