package entity

import "image/color"

// ElementType is the "type" field of a simple scene element
type ElementType string

const (
	ElementPlatform   ElementType = "platform"
	ElementTeleporter ElementType = "teleporter"
)

// Layout tells which geometry list a scene was built from
type Layout int

const (
	LayoutElements Layout = iota
	LayoutStructures
)

// String returns the string representation of the layout
func (l Layout) String() string {
	switch l {
	case LayoutElements:
		return "elements"
	case LayoutStructures:
		return "structures"
	default:
		return "unknown"
	}
}

// ColliderKind classifies scene geometry for collision checks
type ColliderKind int

const (
	ColliderDecor ColliderKind = iota
	ColliderSolid
	ColliderPassThrough
	ColliderTeleporter
)

// String returns the string representation of the collider kind
func (k ColliderKind) String() string {
	switch k {
	case ColliderDecor:
		return "decor"
	case ColliderSolid:
		return "solid"
	case ColliderPassThrough:
		return "pass-through"
	case ColliderTeleporter:
		return "teleporter"
	default:
		return "unknown"
	}
}

// Element is a box of a simple scene.
// ImagePath is set for platforms and teleporters; Color is drawn when the
// image is missing or not ready.
type Element struct {
	Box         Rect
	Color       color.RGBA
	Type        ElementType
	TargetScene string
	ImagePath   string
}

// Structure is a tile of a structure scene.
// Box is already converted from tile coordinates to scene pixels.
type Structure struct {
	TileX, TileY int
	Box          Rect
	Resource     string
	ImagePath    string
	PassThrough  bool
	Teleporter   bool
	TargetScene  string
}

// Collider is one piece of geometry checked against the player hitbox.
// Source is the index into Elements or Structures depending on the scene layout.
type Collider struct {
	Box    Rect
	Kind   ColliderKind
	Target string
	Source int
}

// Scene is a loaded level. It is never mutated after it is built;
// a transition replaces the whole value.
type Scene struct {
	Name       string
	Background string
	Layout     Layout
	Elements   []Element
	Structures []Structure
	Colliders  []Collider
	Spawn      *Point
}

// ImagePaths returns every image the scene refers to, each path once,
// in order of first appearance.
func (s *Scene) ImagePaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	add(s.Background)
	for _, e := range s.Elements {
		add(e.ImagePath)
	}
	for _, st := range s.Structures {
		add(st.ImagePath)
	}
	return paths
}

// Targets returns the distinct teleporter targets of the scene
func (s *Scene) Targets() []string {
	seen := make(map[string]struct{})
	var targets []string
	for _, c := range s.Colliders {
		if c.Kind != ColliderTeleporter {
			continue
		}
		if _, ok := seen[c.Target]; ok {
			continue
		}
		seen[c.Target] = struct{}{}
		targets = append(targets, c.Target)
	}
	return targets
}
