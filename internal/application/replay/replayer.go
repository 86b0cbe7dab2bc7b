package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Scene == "" {
		return nil, fmt.Errorf("replay has no start scene")
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// It returns false once every frame was played.
func (r *Replayer) GetInput() (entity.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Scene returns the scene the recording started in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// TimedLoads reports whether the recording carries the frames scene loads landed on
func (r *Replayer) TimedLoads() bool {
	return r.data.Loads != nil
}

// LoadsAt reports whether a scene load landed on frame
func (r *Replayer) LoadsAt(frame int) bool {
	return slices.Contains(r.data.Loads, frame)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
