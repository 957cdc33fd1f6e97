package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/layout"
	"github.com/bnema/paneshell/internal/logging"
)

// HooksFunc builds the event hooks of a new content pane.
type HooksFunc func(ctx context.Context, slot entity.Slot) port.PaneHooks

// PaneManager creates and destroys panes. Every creation goes through one
// mutex with an existence re-check under the lock, so concurrent requests
// for the same pane create it exactly once.
type PaneManager struct {
	host    port.Host
	session *entity.Session
	opts    Options
	hooks   HooksFunc

	createMu sync.Mutex
}

// NewPaneManager creates a PaneManager. hooks may be nil.
func NewPaneManager(host port.Host, session *entity.Session, opts Options, hooks HooksFunc) *PaneManager {
	return &PaneManager{
		host:    host,
		session: session,
		opts:    opts.withDefaults(),
		hooks:   hooks,
	}
}

// EnsureContentPane creates the pane of slot unless it exists. New panes start
// off-screen with the current content width, then the floating panes are
// raised above them. An empty address loads the default content URL.
func (m *PaneManager) EnsureContentPane(ctx context.Context, slot entity.Slot, address string) error {
	if !slot.Valid() {
		return fmt.Errorf("ensure content pane: %w: %d", entity.ErrInvalidSlot, slot)
	}
	label := entity.ContentLabel(slot)
	if m.host.HasPane(label) {
		return nil
	}

	m.createMu.Lock()
	defer m.createMu.Unlock()

	// Another caller may have created it while we waited.
	if m.host.HasPane(label) {
		return nil
	}

	log := logging.FromContext(ctx)

	width, height, err := m.host.WindowSize(ctx)
	if err != nil {
		return fmt.Errorf("ensure content pane %s: %w", label, err)
	}
	_, contentWidth := layout.ContentRegion(width, m.session.SplitRatio())

	if address == "" {
		address = m.opts.DefaultContentURL
	}

	spec := port.PaneSpec{
		Label:      label,
		Kind:       entity.PaneKindContent,
		URL:        address,
		Bounds:     entity.Rect{X: layout.OffscreenX(width), Width: contentWidth, Height: height},
		InitScript: contentInitScript(slot),
	}
	if m.hooks != nil {
		spec.Hooks = m.hooks(ctx, slot)
	}

	if err := m.host.CreatePane(ctx, spec); err != nil {
		return fmt.Errorf("create content pane %s: %w", label, err)
	}
	log.Info().Int("slot", int(slot)).Str("url", address).Msg("content pane created")

	return m.raiseFloatingLocked(ctx)
}

// EnsureFloatingPanes creates the toolbar and the downloads popup if absent.
// They are parked off-screen until the next layout pass.
func (m *PaneManager) EnsureFloatingPanes(ctx context.Context) error {
	m.createMu.Lock()
	defer m.createMu.Unlock()

	return m.ensureFloatingLocked(ctx)
}

func (m *PaneManager) ensureFloatingLocked(ctx context.Context) error {
	for _, spec := range m.floatingSpecs() {
		if m.host.HasPane(spec.Label) {
			continue
		}
		if err := m.host.CreatePane(ctx, spec); err != nil {
			return fmt.Errorf("create floating pane %s: %w", spec.Label, err)
		}
		logging.FromContext(ctx).Debug().Str("label", string(spec.Label)).Msg("floating pane created")
	}
	return nil
}

func (m *PaneManager) floatingSpecs() []port.PaneSpec {
	lo := m.opts.Layout
	return []port.PaneSpec{
		{
			Label:       entity.LabelToolbar,
			Kind:        entity.PaneKindToolbar,
			URL:         ToolbarURL,
			Bounds:      entity.Rect{X: layout.ParkedX, Width: lo.ToolbarWidth, Height: lo.ToolbarHeight},
			Transparent: true,
		},
		{
			Label:       entity.LabelPopup,
			Kind:        entity.PaneKindPopup,
			URL:         PopupURL,
			Bounds:      entity.Rect{X: layout.ParkedX, Width: lo.PopupWidth, Height: lo.PopupHeight},
			Transparent: true,
		},
	}
}

// RaiseFloatingPanes puts the toolbar and the popup above every content pane.
// Hosts with z-order control raise them in place; others get them closed and
// recreated, which also stacks them on top.
func (m *PaneManager) RaiseFloatingPanes(ctx context.Context) error {
	m.createMu.Lock()
	defer m.createMu.Unlock()

	return m.raiseFloatingLocked(ctx)
}

func (m *PaneManager) raiseFloatingLocked(ctx context.Context) error {
	if raiser, ok := m.host.(port.PaneRaiser); ok {
		if err := m.ensureFloatingLocked(ctx); err != nil {
			return err
		}
		for _, label := range entity.FloatingLabels() {
			if err := raiser.Raise(ctx, label); err != nil {
				return fmt.Errorf("raise %s: %w", label, err)
			}
		}
		return nil
	}

	for _, label := range entity.FloatingLabels() {
		if !m.host.HasPane(label) {
			continue
		}
		if err := m.host.ClosePane(ctx, label); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("label", string(label)).Msg("failed to close floating pane")
		}
	}
	sleepCtx(ctx, m.opts.FloatingSettle)
	return m.ensureFloatingLocked(ctx)
}

// ClosePane closes the content pane of slot. Slot 1 is permanent.
func (m *PaneManager) ClosePane(ctx context.Context, slot entity.Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("close pane: %w: %d", entity.ErrInvalidSlot, slot)
	}
	if slot == entity.PermanentSlot {
		return entity.ErrSlotProtected
	}
	return m.closeIfPresent(ctx, entity.ContentLabel(slot))
}

func (m *PaneManager) closeIfPresent(ctx context.Context, label entity.PaneLabel) error {
	if !m.host.HasPane(label) {
		return nil
	}
	if err := m.host.ClosePane(ctx, label); err != nil {
		if errors.Is(err, entity.ErrPaneNotFound) {
			return nil
		}
		return fmt.Errorf("close %s: %w", label, err)
	}
	logging.FromContext(ctx).Debug().Str("label", string(label)).Msg("pane closed")
	return nil
}

// ResetAll closes every content and floating pane and resets the session.
// Close failures are logged; the session is reset regardless.
func (m *PaneManager) ResetAll(ctx context.Context) {
	log := logging.FromContext(ctx)

	labels := make([]entity.PaneLabel, 0, int(entity.MaxSlot)+2)
	for _, slot := range entity.AllSlots() {
		labels = append(labels, entity.ContentLabel(slot))
	}
	labels = append(labels, entity.FloatingLabels()...)

	for _, label := range labels {
		if err := m.closeIfPresent(ctx, label); err != nil {
			log.Warn().Err(err).Str("label", string(label)).Msg("failed to close pane during reset")
		}
	}
	m.session.Reset()
}

// RecreateContentPane closes the pane of slot, waits for the host to settle
// and creates it again at the default URL.
func (m *PaneManager) RecreateContentPane(ctx context.Context, slot entity.Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("recreate pane: %w: %d", entity.ErrInvalidSlot, slot)
	}
	if err := m.closeIfPresent(ctx, entity.ContentLabel(slot)); err != nil {
		return err
	}
	sleepCtx(ctx, m.opts.RecreateSettle)
	return m.EnsureContentPane(ctx, slot, "")
}

// ExistingSlots lists the slots whose pane exists, ascending.
func (m *PaneManager) ExistingSlots() []entity.Slot {
	slots := make([]entity.Slot, 0, int(entity.MaxSlot))
	for _, slot := range entity.AllSlots() {
		if m.host.HasPane(entity.ContentLabel(slot)) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// URL returns the address of the pane of slot. ok is false when the pane is absent.
func (m *PaneManager) URL(ctx context.Context, slot entity.Slot) (string, bool) {
	label := entity.ContentLabel(slot)
	if !m.host.HasPane(label) {
		return "", false
	}
	url, err := m.host.PaneURL(ctx, label)
	if err != nil {
		return "", false
	}
	return url, true
}

// Navigate loads url in the pane of slot. A missing pane is a no-op and
// reports false.
func (m *PaneManager) Navigate(ctx context.Context, slot entity.Slot, url string) (bool, error) {
	label := entity.ContentLabel(slot)
	if !m.host.HasPane(label) {
		return false, nil
	}
	if err := m.host.Navigate(ctx, label, url); err != nil {
		if errors.Is(err, entity.ErrPaneNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("navigate %s: %w", label, err)
	}
	return true, nil
}

// Evaluate runs script in the pane of slot without waiting for a result.
// A missing pane is a no-op.
func (m *PaneManager) Evaluate(ctx context.Context, slot entity.Slot, script string) error {
	label := entity.ContentLabel(slot)
	if !m.host.HasPane(label) {
		return nil
	}
	if err := m.host.Eval(ctx, label, script); err != nil {
		if errors.Is(err, entity.ErrPaneNotFound) {
			return nil
		}
		return fmt.Errorf("evaluate in %s: %w", label, err)
	}
	return nil
}

// EvaluateWithResult runs script in the pane of slot and waits for its result
// for at most timeout. A non-positive timeout selects the configured default.
func (m *PaneManager) EvaluateWithResult(ctx context.Context, slot entity.Slot, script string, timeout time.Duration) (string, error) {
	evaluator, ok := m.host.(port.ScriptEvaluator)
	if !ok {
		return "", entity.ErrCapabilityUnsupported
	}
	label := entity.ContentLabel(slot)
	if !m.host.HasPane(label) {
		return "", fmt.Errorf("evaluate in %s: %w", label, entity.ErrPaneNotFound)
	}
	if timeout <= 0 {
		timeout = m.opts.EvalTimeout
	}

	evalCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value string
		err   error
	}
	results := make(chan result, 1)
	var once sync.Once
	done := func(value string, err error) {
		once.Do(func() { results <- result{value: value, err: err} })
	}

	if err := evaluator.EvalWithResult(evalCtx, label, script, done); err != nil {
		return "", fmt.Errorf("evaluate in %s: %w", label, err)
	}

	timedOut := func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("evaluate in %s: %w after %s", label, entity.ErrEvalTimeout, timeout)
	}

	select {
	case r := <-results:
		if r.err != nil {
			if errors.Is(evalCtx.Err(), context.DeadlineExceeded) {
				return "", timedOut()
			}
			return "", fmt.Errorf("evaluate in %s: %w", label, r.err)
		}
		return r.value, nil
	case <-evalCtx.Done():
		return "", timedOut()
	}
}

// sleepCtx pauses for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
