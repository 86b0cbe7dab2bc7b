package config

import (
	"errors"
	"fmt"
	"time"
)

// Settings is the root config for settings.yaml
type Settings struct {
	Display    DisplaySettings    `yaml:"display"`
	Player     PlayerSettings     `yaml:"player"`
	Tiles      TileSettings       `yaml:"tiles"`
	Assets     AssetSettings      `yaml:"assets"`
	Scenes     SceneSettings      `yaml:"scenes"`
	Keys       KeySettings        `yaml:"keys"`
	Simulation SimulationSettings `yaml:"simulation"`
}

type DisplaySettings struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	WindowScale  int `yaml:"window_scale"`
	TPS          int `yaml:"tps"`
}

type PlayerSettings struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	Speed       float64 `yaml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward speed set on jump (pixels/tick)
	Gravity     float64 `yaml:"gravity"`      // Added to vertical speed each airborne tick
	FrameDelay  int     `yaml:"frame_delay"`  // Ticks between animation frames
	SpriteSheet string  `yaml:"sprite_sheet"`
}

// TileSettings sizes the grid of structure scenes.
// One tile covers Size*Scale scene pixels.
type TileSettings struct {
	Size  float64 `yaml:"size"`
	Scale float64 `yaml:"scale"`
}

// AssetSettings controls how a structure resource key becomes an image path.
// "tiles.grass" with separator "." becomes Dir + "/tiles/grass" + Extension.
type AssetSettings struct {
	Dir        string `yaml:"dir"`
	Extension  string `yaml:"extension"`
	Separator  string `yaml:"separator"`
	Platform   string `yaml:"platform"`
	Teleporter string `yaml:"teleporter"`
}

type SceneSettings struct {
	Dir         string        `yaml:"dir"`
	Start       string        `yaml:"start"`
	LoadTimeout time.Duration `yaml:"load_timeout"`
}

// KeySettings lists the ebiten key names bound to each logical key
type KeySettings struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Jump   []string `yaml:"jump"`
	Attack []string `yaml:"attack"`
}

type SimulationSettings struct {
	DedupeTeleports bool `yaml:"dedupe_teleports"`
	ClampToScreen   bool `yaml:"clamp_to_screen"`
}

// DefaultSettings returns the settings used when no settings.yaml exists
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplaySettings{
			ScreenWidth:  640,
			ScreenHeight: 480,
			WindowScale:  1,
			TPS:          60,
		},
		Player: PlayerSettings{
			StartX:      50,
			StartY:      50,
			Width:       16,
			Height:      16,
			Scale:       3,
			Speed:       5,
			JumpImpulse: 10,
			Gravity:     0.5,
			FrameDelay:  5,
			SpriteSheet: "assets/sprites.png",
		},
		Tiles: TileSettings{
			Size:  16,
			Scale: 3,
		},
		Assets: AssetSettings{
			Dir:        "assets",
			Extension:  ".png",
			Separator:  ".",
			Platform:   "assets/platform.png",
			Teleporter: "assets/teleporter.png",
		},
		Scenes: SceneSettings{
			Dir:         "scenes",
			Start:       "scene1.json",
			LoadTimeout: 5 * time.Second,
		},
		Keys: KeySettings{
			Left:   []string{"ArrowLeft"},
			Right:  []string{"ArrowRight"},
			Jump:   []string{"ArrowUp"},
			Attack: []string{"Space"},
		},
		Simulation: SimulationSettings{
			DedupeTeleports: true,
			ClampToScreen:   true,
		},
	}
}

// Validate checks the values the simulation divides or scales by
func (s *Settings) Validate() error {
	var errs []error
	if s.Display.ScreenWidth <= 0 || s.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			s.Display.ScreenWidth, s.Display.ScreenHeight))
	}
	if s.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display tps must be positive, got %d", s.Display.TPS))
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 || s.Player.Scale <= 0 {
		errs = append(errs, errors.New("player width, height and scale must be positive"))
	}
	if s.Player.FrameDelay <= 0 {
		errs = append(errs, fmt.Errorf("player frame_delay must be positive, got %d", s.Player.FrameDelay))
	}
	if s.Tiles.Size <= 0 || s.Tiles.Scale <= 0 {
		errs = append(errs, errors.New("tile size and scale must be positive"))
	}
	if s.Scenes.Start == "" {
		errs = append(errs, errors.New("scenes start must name a scene"))
	}
	return errors.Join(errs...)
}

// TilePixels returns the scene-pixel size of one structure tile
func (t TileSettings) TilePixels() float64 {
	return t.Size * t.Scale
}
