package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

// InputSystem samples the keyboard into an InputState once per tick
type InputSystem struct {
	left   []ebiten.Key
	right  []ebiten.Key
	jump   []ebiten.Key
	attack []ebiten.Key
}

// NewInputSystem creates an input system from the key bindings
func NewInputSystem(keys config.KeySettings) (*InputSystem, error) {
	s := &InputSystem{}
	var err error
	if s.left, err = ParseKeys(keys.Left); err != nil {
		return nil, fmt.Errorf("left binding: %w", err)
	}
	if s.right, err = ParseKeys(keys.Right); err != nil {
		return nil, fmt.Errorf("right binding: %w", err)
	}
	if s.jump, err = ParseKeys(keys.Jump); err != nil {
		return nil, fmt.Errorf("jump binding: %w", err)
	}
	if s.attack, err = ParseKeys(keys.Attack); err != nil {
		return nil, fmt.Errorf("attack binding: %w", err)
	}
	return s, nil
}

// ParseKeys converts ebiten key names ("ArrowLeft", "Space", "KeyX") to keys
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() entity.InputState {
	return entity.InputState{
		Left:   anyPressed(s.left),
		Right:  anyPressed(s.right),
		Up:     anyPressed(s.jump),
		Attack: anyPressed(s.attack),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
