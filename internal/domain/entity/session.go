package entity

import "sync/atomic"

const (
	// MinSplitRatio and MaxSplitRatio bound the UI pane share so both sides stay usable.
	MinSplitRatio = 35
	MaxSplitRatio = 65
	// DefaultSplitRatio splits the window evenly.
	DefaultSplitRatio = 50
	// FullRatio means the UI pane covers the whole window.
	FullRatio = 100
)

// Session is the live shell state: content visibility, the foreground slot and
// the UI/content split ratio.
//
// Every field is independently atomic. There is no cross-field transaction, so a
// reader may observe a torn combination during a concurrent toggle; layout passes
// are idempotent and heal on the next pass.
//
// The committed ratio always stays in [MinSplitRatio, MaxSplitRatio]. A running
// visibility animation lays out with a separate transient ratio.
type Session struct {
	contentVisible atomic.Bool
	activeSlot     atomic.Int32
	splitRatio     atomic.Int32
	transientRatio atomic.Int32
	animating      atomic.Bool
}

// SessionSnapshot is a value copy of Session taken field by field.
// SplitRatio is the ratio to lay out with: the transient one while animating.
type SessionSnapshot struct {
	ContentVisible bool
	ActiveSlot     Slot
	SplitRatio     int
}

// NewSession returns a session in its initial state.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset restores the initial values.
func (s *Session) Reset() {
	s.contentVisible.Store(false)
	s.activeSlot.Store(int32(PermanentSlot))
	s.splitRatio.Store(DefaultSplitRatio)
	s.animating.Store(false)
}

func (s *Session) ContentVisible() bool {
	return s.contentVisible.Load()
}

func (s *Session) SetContentVisible(v bool) {
	s.contentVisible.Store(v)
}

func (s *Session) ActiveSlot() Slot {
	return Slot(s.activeSlot.Load())
}

// SetActiveSlot stores slot. Out-of-range values are rejected, never coerced.
func (s *Session) SetActiveSlot(slot Slot) error {
	if !slot.Valid() {
		return ErrInvalidSlot
	}
	s.activeSlot.Store(int32(slot))
	return nil
}

// SplitRatio returns the committed ratio, never an animation frame.
func (s *Session) SplitRatio() int {
	return int(s.splitRatio.Load())
}

// LayoutRatio returns the transient ratio during an animation and the
// committed one otherwise.
func (s *Session) LayoutRatio() int {
	if s.animating.Load() {
		return int(s.transientRatio.Load())
	}
	return int(s.splitRatio.Load())
}

// SetSplitRatio clamps ratio to [MinSplitRatio, MaxSplitRatio], stores it and
// returns the committed value.
func (s *Session) SetSplitRatio(ratio int) int {
	clamped := ClampSplitRatio(ratio)
	s.splitRatio.Store(int32(clamped))
	return clamped
}

// StoreTransientRatio stores an interpolated ratio during a visibility animation.
// Values pass through the whole [0, FullRatio] range there, so only that range is
// enforced. The committed ratio is left untouched.
func (s *Session) StoreTransientRatio(ratio int) {
	s.transientRatio.Store(int32(min(max(ratio, 0), FullRatio)))
	s.animating.Store(true)
}

// CommitRatioUnlessChanged commits ratio when the committed value still equals
// prev, and returns the committed value either way.
func (s *Session) CommitRatioUnlessChanged(prev, ratio int) int {
	s.splitRatio.CompareAndSwap(int32(prev), int32(ClampSplitRatio(ratio)))
	return int(s.splitRatio.Load())
}

// EndTransient makes layout use the committed ratio again.
func (s *Session) EndTransient() {
	s.animating.Store(false)
}

// Snapshot loads each field once.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ContentVisible: s.contentVisible.Load(),
		ActiveSlot:     Slot(s.activeSlot.Load()),
		SplitRatio:     s.LayoutRatio(),
	}
}

// ClampSplitRatio bounds ratio to [MinSplitRatio, MaxSplitRatio].
func ClampSplitRatio(ratio int) int {
	return min(max(ratio, MinSplitRatio), MaxSplitRatio)
}
