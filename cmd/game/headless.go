package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/younwookim/scenehop/internal/application/replay"
	"github.com/younwookim/scenehop/internal/application/system"
)

// runHeadless replays data without a window
func runHeadless(sim *system.Simulation, data *replay.ReplayData, timeout time.Duration) (replay.Summary, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	loaded, err := sim.Loader().Load(ctx, data.Scene)
	if err != nil {
		return replay.Summary{}, err
	}
	defer sim.Loader().Close()

	st := sim.NewState(loaded)
	return replay.Run(sim, st, replay.NewReplayer(*data)), nil
}

func printSummary(w io.Writer, s replay.Summary) {
	p := s.Player
	_, _ = fmt.Fprintf(w, "frames:   %d\n", s.Frames)
	_, _ = fmt.Fprintf(w, "scene:    %s\n", s.Scene)
	_, _ = fmt.Fprintf(w, "player:   x=%.1f y=%.1f vy=%.1f %s facing %s frame %d\n",
		p.X, p.Y, p.VelocityY, p.State, p.Direction, p.FrameIndex)
	_, _ = fmt.Fprintf(w, "teleports: %d requested, %d swapped\n", len(s.Requests), s.Swaps)
	for _, err := range s.Errors {
		_, _ = fmt.Fprintf(w, "error:    %v\n", err)
	}
}
