package shell

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/layout"
	"github.com/bnema/paneshell/internal/logging"
)

// Animator drives the content visibility transition frame by frame.
type Animator struct {
	steps atomic.Int32
	delay atomic.Int64
	sleep func(ctx context.Context, d time.Duration)
}

// NewAnimator creates an Animator. steps below 1 select the default.
func NewAnimator(steps int, delay time.Duration) *Animator {
	a := &Animator{sleep: sleepCtx}
	a.SetTiming(steps, delay)
	return a
}

// SetTiming changes the step count and delay of later runs.
func (a *Animator) SetTiming(steps int, delay time.Duration) {
	if steps < 1 {
		steps = layout.DefaultAnimationSteps
	}
	a.steps.Store(int32(steps))
	a.delay.Store(int64(max(delay, 0)))
}

// Timing returns the step count and delay used by the next run.
func (a *Animator) Timing() (int, time.Duration) {
	return int(a.steps.Load()), time.Duration(a.delay.Load())
}

// Run animates session toward target in direction dir, calling apply after
// each committed frame. Run blocks until the final frame is committed.
//
// A cancelled ctx or a failing apply skips the remaining step frames, but the
// final frame is always committed so the session ends in the target state.
// Step frames only touch the transient ratio. A ratio committed while the run
// is in flight wins over target.
func (a *Animator) Run(
	ctx context.Context,
	dir layout.Direction,
	target int,
	session *entity.Session,
	apply func(ctx context.Context) error,
) error {
	log := logging.FromContext(ctx)
	startRatio := session.SplitRatio()
	frames := layout.Frames(dir, target, int(a.steps.Load()))
	delay := time.Duration(a.delay.Load())
	final := frames[len(frames)-1]

	var applyErr error
	for _, frame := range frames[:len(frames)-1] {
		if ctx.Err() != nil {
			log.Debug().Str("direction", dir.String()).Int("step", frame.Step).Msg("animation interrupted")
			break
		}

		session.StoreTransientRatio(frame.Ratio)
		session.SetContentVisible(frame.Visible)
		if applyErr = apply(ctx); applyErr != nil {
			break
		}
		a.sleep(ctx, delay)
	}

	session.CommitRatioUnlessChanged(startRatio, final.Ratio)
	session.EndTransient()
	session.SetContentVisible(final.Visible)

	// The final layout pass runs even after cancellation.
	finalCtx := context.WithoutCancel(ctx)
	if err := apply(finalCtx); err != nil {
		return err
	}
	return applyErr
}
