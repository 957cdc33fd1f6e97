package headless

import (
	"context"
	"slices"

	"github.com/bnema/paneshell/internal/logging"
)

// Event is one broadcast recorded by the host.
type Event struct {
	Name    string
	Payload any
}

// Emit records the event and hands it to subscribers.
func (h *Host) Emit(ctx context.Context, event string, payload any) error {
	ev := Event{Name: event, Payload: payload}

	h.mu.Lock()
	h.events = append(h.events, ev)
	listeners := slices.Clone(h.listeners)
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("event", event).Interface("payload", payload).Msg("event broadcast")

	for _, fn := range listeners {
		fn(ev)
	}
	return nil
}

// Subscribe registers fn for every later Emit.
func (h *Host) Subscribe(fn func(Event)) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	h.mu.Unlock()
}

// Events returns every recorded event in order.
func (h *Host) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.events)
}

// EventsNamed returns the recorded events called name.
func (h *Host) EventsNamed(name string) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []Event
	for _, ev := range h.events {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

// ResetEvents forgets recorded events.
func (h *Host) ResetEvents() {
	h.mu.Lock()
	h.events = nil
	h.mu.Unlock()
}
