package asset

import (
	"path"
	"strings"
)

// PathRule turns a structure resource key into an image path.
// With Dir "assets", Separator "." and Extension ".png",
// the key "tiles.grass.top" resolves to "assets/tiles/grass/top.png".
type PathRule struct {
	Dir       string
	Separator string
	Extension string
}

// Resolve returns the image path for a resource key.
// An empty key resolves to an empty path.
func (r PathRule) Resolve(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if r.Separator != "" {
		key = strings.ReplaceAll(key, r.Separator, "/")
	}
	return path.Join(r.Dir, key) + r.Extension
}
