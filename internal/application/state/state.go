package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading    GameState = iota // Start scene not applied yet
	StatePlaying                     // Simulation ticking
	StatePaused                      // Simulation frozen, Escape resumes
	StateLoadFailed                  // Start scene failed, Enter retries
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLoadFailed:
		return "LoadFailed"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}
