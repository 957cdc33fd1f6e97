package shell

import (
	"time"

	"github.com/bnema/paneshell/internal/domain/layout"
)

const (
	// DefaultContentURL is loaded into a content slot opened without an address.
	DefaultContentURL = "https://claude.ai/new"
	// ToolbarURL and PopupURL are the bundled pages of the floating panes.
	ToolbarURL = "paneshell://toolbar"
	PopupURL   = "paneshell://downloads"

	defaultFloatingSettle = 10 * time.Millisecond
	defaultRecreateSettle = 100 * time.Millisecond
	defaultEvalTimeout    = 10 * time.Second
)

// Options tunes the shell. New fills in a missing URL, step count, eval
// timeout and layout sizes; durations are taken as given.
type Options struct {
	DefaultContentURL string
	AnimationSteps    int
	StepDelay         time.Duration
	// FloatingSettle is the pause between closing and recreating the floating
	// panes when the host cannot raise them.
	FloatingSettle time.Duration
	// RecreateSettle is the pause between closing and recreating a content pane.
	RecreateSettle time.Duration
	EvalTimeout    time.Duration
	Layout         layout.Options
}

// DefaultOptions returns the stock timings and sizes.
func DefaultOptions() Options {
	return Options{
		DefaultContentURL: DefaultContentURL,
		AnimationSteps:    layout.DefaultAnimationSteps,
		StepDelay:         layout.DefaultStepDelay,
		FloatingSettle:    defaultFloatingSettle,
		RecreateSettle:    defaultRecreateSettle,
		EvalTimeout:       defaultEvalTimeout,
		Layout:            layout.DefaultOptions(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DefaultContentURL == "" {
		o.DefaultContentURL = def.DefaultContentURL
	}
	if o.AnimationSteps <= 0 {
		o.AnimationSteps = def.AnimationSteps
	}
	if o.StepDelay < 0 {
		o.StepDelay = 0
	}
	if o.FloatingSettle < 0 {
		o.FloatingSettle = 0
	}
	if o.RecreateSettle < 0 {
		o.RecreateSettle = 0
	}
	if o.EvalTimeout <= 0 {
		o.EvalTimeout = def.EvalTimeout
	}
	if o.Layout == (layout.Options{}) {
		o.Layout = def.Layout
	}
	return o
}
