package layout

import "time"

// Animation defaults for the content visibility transition.
const (
	DefaultAnimationSteps = 8
	DefaultStepDelay      = 20 * time.Millisecond
)

// Direction of a visibility transition.
type Direction int

const (
	Opening Direction = iota
	Closing
)

func (d Direction) String() string {
	if d == Opening {
		return "opening"
	}
	return "closing"
}

// Frame is one step of a visibility transition.
type Frame struct {
	Step int
	// Ratio is the interpolated UI share, anywhere in [target, 100].
	Ratio int
	// Visible is the content visibility to commit for this frame.
	Visible bool
	// Final marks the closing frame that re-commits the exact target ratio.
	Final bool
}

// EaseOutQuad maps linear progress in [0,1] onto an ease-out quadratic curve.
func EaseOutQuad(progress float64) float64 {
	return 1 - (1-progress)*(1-progress)
}

// Frames returns the frames of a transition toward target, followed by a
// final frame carrying the exact target ratio.
//
// Opening moves the ratio from 100 down to target and is visible from the
// first frame. Closing moves it from target up to 100 and stays visible until
// the final frame.
func Frames(dir Direction, target, steps int) []Frame {
	if steps < 1 {
		steps = 1
	}

	frames := make([]Frame, 0, steps+1)
	span := float64(100 - target)
	for step := 1; step <= steps; step++ {
		eased := EaseOutQuad(float64(step) / float64(steps))

		var ratio float64
		if dir == Opening {
			ratio = 100 - span*eased
		} else {
			ratio = float64(target) + span*eased
		}

		frames = append(frames, Frame{
			Step:    step,
			Ratio:   int(ratio),
			Visible: true,
		})
	}

	frames = append(frames, Frame{
		Step:    steps + 1,
		Ratio:   target,
		Visible: dir == Opening,
		Final:   true,
	})
	return frames
}
