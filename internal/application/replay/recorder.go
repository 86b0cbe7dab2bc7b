package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data  ReplayData
	frame int
}

// NewRecorder creates a recorder for a session starting in scene
func NewRecorder(scene string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Scene:     scene,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
			Loads:     []int{},
		},
		frame: 0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input entity.InputState) {
	r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, input))
	r.frame++
}

// RecordLoad marks the last recorded frame as the one a scene load landed on
func (r *Recorder) RecordLoad() {
	if r.frame == 0 {
		return
	}
	r.data.Loads = append(r.data.Loads, r.frame-1)
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Encode writes the replay data as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
