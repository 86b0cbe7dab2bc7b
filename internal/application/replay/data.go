package replay

import (
	"time"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Version of the replay file format
const Version = "3"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up (jump)
	A bool `json:"a,omitempty"` // Attack
}

// Input converts the frame back to an input state
func (f FrameInput) Input() entity.InputState {
	return entity.InputState{Left: f.L, Right: f.R, Up: f.U, Attack: f.A}
}

// NewFrameInput records input as frame number frame
func NewFrameInput(frame int, in entity.InputState) FrameInput {
	return FrameInput{F: frame, L: in.Left, R: in.Right, U: in.Up, A: in.Attack}
}

// ReplayData contains all data needed to replay a game session.
// The simulation has no randomness, so besides the start scene and the inputs
// only the timing of scene loads matters: Loads lists the frames on which a
// finished load was applied. A nil Loads (version 2 files and generated data)
// means every load lands on the tick after its request.
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Loads     []int        `json:"loads"`
}

// NewReplayData builds replay data from a list of per-tick inputs
func NewReplayData(scene string, inputs []entity.InputState) ReplayData {
	data := ReplayData{
		Version:   Version,
		Scene:     scene,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, len(inputs)),
	}
	for i, in := range inputs {
		data.Frames[i] = NewFrameInput(i, in)
	}
	return data
}
