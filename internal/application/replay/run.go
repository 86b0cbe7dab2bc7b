package replay

import (
	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Summary is the outcome of a replay run
type Summary struct {
	Frames   int
	Scene    string
	Player   entity.Player
	Requests []string // Teleport targets in request order
	Swaps    int
	Errors   []error
	Loads    []int // Frames on which a load result was applied
}

// Run plays every remaining frame through sim, starting from st.
//
// When the recording carries load frames, a finished load is held back until
// its recorded frame and waited for there, so the run matches the live
// session no matter how long loading takes. Otherwise it waits after every
// tick that left a load pending, and the swap lands on the next tick.
func Run(sim *system.Simulation, st *system.SimulationState, r *Replayer) Summary {
	var sum Summary
	timed := r.TimedLoads()
	for {
		frame := r.CurrentFrame()
		input, ok := r.GetInput()
		if !ok {
			break
		}

		var res system.StepResult
		switch {
		case !timed:
			res = sim.Step(st, input)
		case r.LoadsAt(frame):
			if _, pending := sim.Loader().Pending(); pending {
				sim.Loader().Wait()
			}
			res = sim.Step(st, input)
		default:
			res = sim.StepHold(st, input)
		}
		sum.Frames++

		if res.Swapped || res.Err != nil {
			sum.Loads = append(sum.Loads, frame)
		}
		if res.Requested != "" {
			sum.Requests = append(sum.Requests, res.Requested)
		}
		if res.Swapped {
			sum.Swaps++
		}
		if res.Err != nil {
			sum.Errors = append(sum.Errors, res.Err)
		}

		if _, pending := sim.Loader().Pending(); pending && !timed {
			sim.Loader().Wait()
		}
	}

	sum.Scene = st.SceneName
	sum.Player = *st.Player
	return sum
}
