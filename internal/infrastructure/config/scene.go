package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SceneDocument is the root of a scene JSON file.
// A scene lists either elements or structures.
type SceneDocument struct {
	Background string            `json:"background,omitempty"`
	Spawn      *PositionConfig   `json:"spawn,omitempty"`
	Elements   []ElementConfig   `json:"elements,omitempty"`
	Structures []StructureConfig `json:"structures,omitempty"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ElementConfig is a box of a simple scene, in scene pixels
type ElementConfig struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Color       string  `json:"color,omitempty"`
	Type        string  `json:"type,omitempty"`
	TargetScene string  `json:"targetScene,omitempty"`
}

// StructureConfig is a tile of a structure scene, in tile coordinates
type StructureConfig struct {
	X                int    `json:"x"`
	Y                int    `json:"y"`
	Resource         string `json:"resource"`
	AllowPassThrough Flag   `json:"allow_pass_through"`
	Type             string `json:"type,omitempty"`
	TargetScene      string `json:"targetScene,omitempty"`
}

// Flag is a boolean that also accepts 0 and 1
type Flag bool

// UnmarshalJSON accepts true, false, 0, 1 and their quoted forms
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch s {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", string(data))
	}
	return nil
}

// MarshalJSON writes the flag as 0 or 1, the form scene files use
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// ParseScene decodes a scene document
func ParseScene(data []byte) (*SceneDocument, error) {
	var doc SceneDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
