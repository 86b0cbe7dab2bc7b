// Package input holds the key map fed by press and release events.
//
// Frontends that receive keys as events (a terminal, a browser) call Press and
// Release from their event goroutine. The game loop calls Snapshot once per
// tick, so the simulation only ever sees a consistent copy.
package input

import (
	"sync"
	"time"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Bindings maps each logical key to the key names that trigger it
type Bindings struct {
	Left   []string
	Right  []string
	Jump   []string
	Attack []string
}

// Keyboard is a thread-safe key name -> pressed map
type Keyboard struct {
	mu      sync.Mutex
	pressed map[string]time.Time
	now     func() time.Time
}

// NewKeyboard creates an empty keyboard
func NewKeyboard() *Keyboard {
	return NewKeyboardClock(time.Now)
}

// NewKeyboardClock creates an empty keyboard that stamps presses with now
func NewKeyboardClock(now func() time.Time) *Keyboard {
	return &Keyboard{
		pressed: make(map[string]time.Time),
		now:     now,
	}
}

// Press marks a key as held. Repeated presses refresh its timestamp.
func (k *Keyboard) Press(key string) {
	k.mu.Lock()
	k.pressed[key] = k.now()
	k.mu.Unlock()
}

// Release marks a key as up
func (k *Keyboard) Release(key string) {
	k.mu.Lock()
	delete(k.pressed, key)
	k.mu.Unlock()
}

// ReleaseStale releases keys whose last press is older than holdFor.
// Terminals only report presses (and auto-repeats), never releases.
func (k *Keyboard) ReleaseStale(holdFor time.Duration) {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	for key, at := range k.pressed {
		if now.Sub(at) > holdFor {
			delete(k.pressed, key)
		}
	}
}

// Reset releases every key
func (k *Keyboard) Reset() {
	k.mu.Lock()
	clear(k.pressed)
	k.mu.Unlock()
}

// Snapshot returns the logical input state for one tick
func (k *Keyboard) Snapshot(b Bindings) entity.InputState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return entity.InputState{
		Left:   k.anyLocked(b.Left),
		Right:  k.anyLocked(b.Right),
		Up:     k.anyLocked(b.Jump),
		Attack: k.anyLocked(b.Attack),
	}
}

func (k *Keyboard) anyLocked(keys []string) bool {
	for _, key := range keys {
		if _, ok := k.pressed[key]; ok {
			return true
		}
	}
	return false
}
