package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

// SceneBuilder converts scene documents into immutable scenes
type SceneBuilder struct {
	tile       float64
	rule       asset.PathRule
	platform   string
	teleporter string
}

// NewSceneBuilder creates a builder from the tile and asset settings
func NewSceneBuilder(cfg *config.Settings) *SceneBuilder {
	return &SceneBuilder{
		tile: cfg.Tiles.TilePixels(),
		rule: asset.PathRule{
			Dir:       cfg.Assets.Dir,
			Separator: cfg.Assets.Separator,
			Extension: cfg.Assets.Extension,
		},
		platform:   cfg.Assets.Platform,
		teleporter: cfg.Assets.Teleporter,
	}
}

// Build creates a scene named name from its document.
// A document uses either elements or structures, never both.
func (b *SceneBuilder) Build(name string, doc *config.SceneDocument) (*entity.Scene, error) {
	if doc == nil {
		return nil, errors.New("empty scene document")
	}
	if len(doc.Elements) > 0 && len(doc.Structures) > 0 {
		return nil, errors.New("scene declares both elements and structures")
	}

	scene := &entity.Scene{
		Name:       name,
		Background: doc.Background,
	}
	if doc.Spawn != nil {
		scene.Spawn = &entity.Point{X: doc.Spawn.X, Y: doc.Spawn.Y}
	}

	if len(doc.Structures) > 0 {
		scene.Layout = entity.LayoutStructures
		if err := b.buildStructures(scene, doc.Structures); err != nil {
			return nil, err
		}
		return scene, nil
	}

	scene.Layout = entity.LayoutElements
	if err := b.buildElements(scene, doc.Elements); err != nil {
		return nil, err
	}
	return scene, nil
}

func (b *SceneBuilder) buildElements(scene *entity.Scene, elems []config.ElementConfig) error {
	scene.Elements = make([]entity.Element, 0, len(elems))
	for i, ec := range elems {
		c, _ := ParseColor(ec.Color)
		e := entity.Element{
			Box:         entity.Rect{X: ec.X, Y: ec.Y, W: ec.Width, H: ec.Height},
			Color:       c,
			Type:        entity.ElementType(ec.Type),
			TargetScene: ec.TargetScene,
		}

		kind := entity.ColliderDecor
		switch e.Type {
		case entity.ElementPlatform:
			kind = entity.ColliderSolid
			e.ImagePath = b.platform
		case entity.ElementTeleporter:
			if e.TargetScene == "" {
				return fmt.Errorf("element %d: %w", i, ErrMissingTarget)
			}
			kind = entity.ColliderTeleporter
			e.ImagePath = b.teleporter
		}

		scene.Elements = append(scene.Elements, e)
		scene.Colliders = append(scene.Colliders, entity.Collider{
			Box:    e.Box,
			Kind:   kind,
			Target: e.TargetScene,
			Source: i,
		})
	}
	return nil
}

func (b *SceneBuilder) buildStructures(scene *entity.Scene, structs []config.StructureConfig) error {
	scene.Structures = make([]entity.Structure, 0, len(structs))
	for i, sc := range structs {
		st := entity.Structure{
			TileX: sc.X,
			TileY: sc.Y,
			Box: entity.Rect{
				X: float64(sc.X) * b.tile,
				Y: float64(sc.Y) * b.tile,
				W: b.tile,
				H: b.tile,
			},
			Resource:    sc.Resource,
			ImagePath:   b.rule.Resolve(sc.Resource),
			PassThrough: bool(sc.AllowPassThrough),
			Teleporter:  sc.Type == string(entity.ElementTeleporter),
			TargetScene: sc.TargetScene,
		}

		var kind entity.ColliderKind
		switch {
		case st.Teleporter:
			if st.TargetScene == "" {
				return fmt.Errorf("structure %d: %w", i, ErrMissingTarget)
			}
			kind = entity.ColliderTeleporter
		case st.PassThrough:
			kind = entity.ColliderPassThrough
		default:
			kind = entity.ColliderSolid
		}

		scene.Structures = append(scene.Structures, st)
		scene.Colliders = append(scene.Colliders, entity.Collider{
			Box:    st.Box,
			Kind:   kind,
			Target: st.TargetScene,
			Source: i,
		})
	}
	return nil
}
