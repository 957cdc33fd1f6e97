// Package shell orchestrates the panes of the main window: the control UI,
// up to three content slots and the floating toolbar and downloads popup.
// It owns the session state and turns commands into host mutations followed
// by a full layout pass.
package shell

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/layout"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

const (
	layoutKey mainloop.Key = "layout"

	blankURL        = "about:blank"
	generatingToken = "#generating"
)

// Deps holds the collaborators of a Shell.
type Deps struct {
	Host port.Host
	// Emitter broadcasts events to every pane. Nil drops them.
	Emitter port.EventEmitter
	// Prepare and Record drive download interception. Either may be nil.
	Prepare *usecase.PrepareDownloadUseCase
	Record  *usecase.RecordDownloadUseCase
	// DownloadEvents receives download progress. Optional.
	DownloadEvents port.DownloadEventHandler
}

// StateView is the session as reported to the control UI.
type StateView struct {
	Visible       bool  `json:"visible"`
	ActiveSlot    int   `json:"active_slot"`
	ExistingSlots []int `json:"existing_slots"`
}

// Shell is the command surface of the pane orchestration.
type Shell struct {
	host      port.Host
	emitter   port.EventEmitter
	opts      Options
	session   *entity.Session
	panes     *PaneManager
	animator  *Animator
	downloads *DownloadInterceptor
	resizes   *mainloop.Coalescer

	popupShown atomic.Bool
}

// New creates a Shell with a fresh session.
func New(deps Deps, opts Options) *Shell {
	opts = opts.withDefaults()
	s := &Shell{
		host:     deps.Host,
		emitter:  deps.Emitter,
		opts:     opts,
		session:  entity.NewSession(),
		animator: NewAnimator(opts.AnimationSteps, opts.StepDelay),
		resizes:  mainloop.NewCoalescer(deps.Host.Post),
	}
	s.downloads = NewDownloadInterceptor(deps.Host, deps.Emitter, deps.Prepare, deps.Record, deps.DownloadEvents)
	s.panes = NewPaneManager(deps.Host, s.session, opts, s.contentHooks)
	return s
}

// ApplyAnimation switches later toggles to the step count and delay of opts.
func (s *Shell) ApplyAnimation(opts Options) {
	s.animator.SetTiming(opts.AnimationSteps, opts.StepDelay)
}

// AnimationTiming returns the step count and delay of the next toggle.
func (s *Shell) AnimationTiming() (int, time.Duration) {
	return s.animator.Timing()
}

// Session exposes the live session.
func (s *Shell) Session() *entity.Session {
	return s.session
}

// Panes exposes the pane lifecycle manager.
func (s *Shell) Panes() *PaneManager {
	return s.panes
}

// Close drops pending resize work.
func (s *Shell) Close() {
	s.resizes.Destroy()
}

func (s *Shell) contentHooks(ctx context.Context, slot entity.Slot) port.PaneHooks {
	hooks := s.downloads.Hooks(ctx, slot)
	hookCtx := logging.WithSlot(context.WithoutCancel(ctx), int(slot))
	hooks.OnPageLoaded = func(address string) {
		s.emit(hookCtx, port.EventContentPageLoaded, port.SlotURLPayload{Slot: int(slot), URL: address})
	}
	return hooks
}

// relayout computes the layout for the current session and applies it.
// Panes that vanish mid-pass are skipped; a missing base UI pane fails.
func (s *Shell) relayout(ctx context.Context) error {
	width, height, err := s.host.WindowSize(ctx)
	if err != nil {
		return fmt.Errorf("relayout: %w", err)
	}

	lo, err := layout.Compute(layout.Input{
		Width:      width,
		Height:     height,
		State:      s.session.Snapshot(),
		PopupShown: s.popupShown.Load(),
		Existing:   s.host.Panes(),
	}, s.opts.Layout)
	if err != nil {
		return err
	}

	for _, p := range lo.Placements {
		if err := s.place(ctx, p); err != nil {
			if errors.Is(err, entity.ErrPaneNotFound) {
				logging.FromContext(ctx).Debug().Str("label", string(p.Label)).Msg("pane vanished during layout")
				continue
			}
			return fmt.Errorf("relayout %s: %w", p.Label, err)
		}
	}
	return nil
}

func (s *Shell) place(ctx context.Context, p layout.Placement) error {
	if err := s.host.SetPosition(ctx, p.Label, p.Rect.X, p.Rect.Y); err != nil {
		return err
	}
	if p.PositionOnly {
		return nil
	}
	return s.host.SetSize(ctx, p.Label, p.Rect.Width, p.Rect.Height)
}

// ToggleContentVisibility animates the content side in or out and returns
// the new visibility.
func (s *Shell) ToggleContentVisibility(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)
	opening := !s.session.ContentVisible()

	dir := layout.Closing
	if opening {
		dir = layout.Opening
		if err := s.panes.EnsureFloatingPanes(ctx); err != nil {
			return false, err
		}
		if err := s.panes.EnsureContentPane(ctx, s.session.ActiveSlot(), ""); err != nil {
			return false, err
		}
	} else {
		s.popupShown.Store(false)
	}

	target := entity.ClampSplitRatio(s.session.SplitRatio())
	log.Debug().Str("direction", dir.String()).Int("target", target).Msg("toggling content")

	if err := s.animator.Run(ctx, dir, target, s.session, s.relayout); err != nil {
		return s.session.ContentVisible(), fmt.Errorf("toggle content: %w", err)
	}
	return s.session.ContentVisible(), nil
}

// SwitchToSlot brings slot to the foreground, creating its pane if needed.
func (s *Shell) SwitchToSlot(ctx context.Context, slot int) error {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return err
	}
	if err := s.panes.EnsureFloatingPanes(ctx); err != nil {
		return err
	}
	if err := s.panes.EnsureContentPane(ctx, target, ""); err != nil {
		return err
	}

	// A pane left blank by a failed load gets the default page again.
	if current, ok := s.panes.URL(ctx, target); ok && current == blankURL {
		if _, err := s.panes.Navigate(ctx, target, s.opts.DefaultContentURL); err != nil {
			return err
		}
	}

	if err := s.session.SetActiveSlot(target); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Int("slot", slot).Msg("switched slot")
	return s.relayout(ctx)
}

// SwitchToSlotWithAddress brings slot to the foreground showing address.
// An existing pane navigates; a missing one is created at address.
func (s *Shell) SwitchToSlotWithAddress(ctx context.Context, slot int, address string) error {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return err
	}
	if address == "" {
		return s.SwitchToSlot(ctx, slot)
	}
	if err := validateAddress(address); err != nil {
		return err
	}

	if err := s.panes.EnsureFloatingPanes(ctx); err != nil {
		return err
	}
	if target != entity.PermanentSlot {
		if err := s.panes.EnsureContentPane(ctx, entity.PermanentSlot, ""); err != nil {
			return err
		}
	}

	navigated, err := s.panes.Navigate(ctx, target, address)
	if err != nil {
		return err
	}
	if !navigated {
		if err := s.panes.EnsureContentPane(ctx, target, address); err != nil {
			return err
		}
	}

	if err := s.session.SetActiveSlot(target); err != nil {
		return err
	}
	return s.relayout(ctx)
}

// SessionState reports visibility, the active slot and the slots whose pane exists.
func (s *Shell) SessionState(_ context.Context) StateView {
	snap := s.session.Snapshot()
	existing := s.panes.ExistingSlots()
	view := StateView{
		Visible:       snap.ContentVisible,
		ActiveSlot:    int(snap.ActiveSlot),
		ExistingSlots: make([]int, 0, len(existing)),
	}
	for _, slot := range existing {
		view.ExistingSlots = append(view.ExistingSlots, int(slot))
	}
	return view
}

// CloseSlot closes the pane of slot and returns the active slot afterwards.
// Closing the active slot falls back to the permanent slot.
func (s *Shell) CloseSlot(ctx context.Context, slot int) (int, error) {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return int(s.session.ActiveSlot()), err
	}
	if err := s.panes.ClosePane(ctx, target); err != nil {
		return int(s.session.ActiveSlot()), err
	}

	if s.session.ActiveSlot() == target {
		if err := s.session.SetActiveSlot(entity.PermanentSlot); err != nil {
			return int(target), err
		}
		s.popupShown.Store(false)
	}

	active := int(s.session.ActiveSlot())
	logging.FromContext(ctx).Info().Int("slot", slot).Int("active", active).Msg("slot closed")
	return active, s.relayout(ctx)
}

// SetSplitRatio stores the clamped ratio and relays out visible content.
func (s *Shell) SetSplitRatio(ctx context.Context, ratio int) error {
	committed := s.session.SetSplitRatio(ratio)
	logging.FromContext(ctx).Debug().Int("requested", ratio).Int("committed", committed).Msg("split ratio set")
	if !s.session.ContentVisible() {
		return nil
	}
	return s.relayout(ctx)
}

// SplitRatio returns the committed ratio.
func (s *Shell) SplitRatio() int {
	return s.session.SplitRatio()
}

// ResetSession closes every content and floating pane and restores the
// initial session.
func (s *Shell) ResetSession(ctx context.Context) error {
	s.panes.ResetAll(ctx)
	s.popupShown.Store(false)
	logging.FromContext(ctx).Info().Msg("session reset")
	return s.relayout(ctx)
}

// PreloadContent creates the floating panes and the permanent slot ahead of
// the first toggle.
func (s *Shell) PreloadContent(ctx context.Context) error {
	if err := s.panes.EnsureFloatingPanes(ctx); err != nil {
		return err
	}
	return s.panes.EnsureContentPane(ctx, entity.PermanentSlot, "")
}

// SlotURL returns the address shown in slot without its fragment, or the
// default content URL when the slot has no pane.
func (s *Shell) SlotURL(ctx context.Context, slot int) string {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return s.opts.DefaultContentURL
	}
	address, ok := s.panes.URL(ctx, target)
	if !ok {
		return s.opts.DefaultContentURL
	}
	address, _, _ = strings.Cut(address, "#")
	return address
}

// GenerationInProgress reports whether the page in slot is producing a response.
func (s *Shell) GenerationInProgress(ctx context.Context, slot int) bool {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return false
	}
	address, ok := s.panes.URL(ctx, target)
	return ok && strings.Contains(address, generatingToken)
}

// NavigateSlot loads address in slot. A slot without a pane is left alone.
func (s *Shell) NavigateSlot(ctx context.Context, slot int, address string) error {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}

	s.emit(ctx, port.EventContentNavigationStarted, port.SlotURLPayload{Slot: slot, URL: address})
	_, err = s.panes.Navigate(ctx, target, address)
	return err
}

// NotifyURLChange broadcasts an in-page address change of slot.
func (s *Shell) NotifyURLChange(ctx context.Context, slot int, address string) error {
	if _, err := entity.ParseSlot(slot); err != nil {
		return err
	}
	s.emit(ctx, port.EventContentURLChanged, port.SlotURLPayload{Slot: slot, URL: address})
	return nil
}

// NewChatInSlot sends slot back to the default content page.
func (s *Shell) NewChatInSlot(ctx context.Context, slot int) error {
	return s.NavigateSlot(ctx, slot, s.opts.DefaultContentURL)
}

// ReloadSlot reloads the page in slot.
func (s *Shell) ReloadSlot(ctx context.Context, slot int) error {
	return s.EvalInSlot(ctx, slot, scriptReload)
}

// RecreateSlot replaces the pane of slot with a fresh one at the default page.
func (s *Shell) RecreateSlot(ctx context.Context, slot int) error {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return err
	}
	if err := s.panes.RecreateContentPane(ctx, target); err != nil {
		return err
	}
	if s.session.ActiveSlot() != target {
		return nil
	}
	return s.relayout(ctx)
}

// EvalInSlot runs script in slot without waiting for it.
func (s *Shell) EvalInSlot(ctx context.Context, slot int, script string) error {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return err
	}
	return s.panes.Evaluate(ctx, target, script)
}

// EvalInSlotWithResult runs script in slot and returns its result. A
// non-positive timeout selects the configured default.
func (s *Shell) EvalInSlotWithResult(ctx context.Context, slot int, script string, timeout time.Duration) (string, error) {
	target, err := entity.ParseSlot(slot)
	if err != nil {
		return "", err
	}
	return s.panes.EvaluateWithResult(ctx, target, script, timeout)
}

// ToolbarBack goes back in the history of the active slot.
func (s *Shell) ToolbarBack(ctx context.Context) error {
	return s.panes.Evaluate(ctx, s.session.ActiveSlot(), scriptHistoryBack)
}

// ToolbarForward goes forward in the history of the active slot.
func (s *Shell) ToolbarForward(ctx context.Context) error {
	return s.panes.Evaluate(ctx, s.session.ActiveSlot(), scriptHistoryForward)
}

// ToolbarReload reloads the active slot.
func (s *Shell) ToolbarReload(ctx context.Context) error {
	return s.panes.Evaluate(ctx, s.session.ActiveSlot(), scriptReload)
}

// ToolbarRecreate recreates the pane of the active slot.
func (s *Shell) ToolbarRecreate(ctx context.Context) error {
	return s.RecreateSlot(ctx, int(s.session.ActiveSlot()))
}

// ShowDownloadsPopup opens the downloads popup above the toolbar and asks it
// to refresh its list.
func (s *Shell) ShowDownloadsPopup(ctx context.Context) error {
	if err := s.panes.EnsureFloatingPanes(ctx); err != nil {
		return err
	}
	s.popupShown.Store(true)
	if err := s.relayout(ctx); err != nil {
		return err
	}
	s.emit(ctx, port.EventRefreshDownloads, nil)
	return nil
}

// HideDownloadsPopup moves the popup off-screen.
func (s *Shell) HideDownloadsPopup(ctx context.Context) error {
	s.popupShown.Store(false)
	if err := s.relayout(ctx); err != nil {
		return err
	}
	s.emit(ctx, port.EventDownloadsPopupClosed, nil)
	return nil
}

// PopupShown reports whether the downloads popup is open.
func (s *Shell) PopupShown() bool {
	return s.popupShown.Load()
}

// ForwardScroll scrolls the active slot vertically by deltaY.
func (s *Shell) ForwardScroll(ctx context.Context, deltaY float64) error {
	return s.panes.Evaluate(ctx, s.session.ActiveSlot(), scrollScript(deltaY))
}

// ForwardClick clicks the active slot at a point given relative to the toolbar.
func (s *Shell) ForwardClick(ctx context.Context, x, y float64) error {
	width, height, err := s.host.WindowSize(ctx)
	if err != nil {
		return err
	}
	cx, cy := layout.TranslateToolbarPoint(width, height, s.session.LayoutRatio(), s.opts.Layout, x, y)
	return s.panes.Evaluate(ctx, s.session.ActiveSlot(), clickScript(cx, cy))
}

// HandleResize schedules a layout pass on the host's main loop. Bursts of
// resize notifications collapse into a single pass.
func (s *Shell) HandleResize(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	s.resizes.Post(layoutKey, func() {
		if err := s.relayout(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("layout after resize failed")
		}
	})
}

func (s *Shell) emit(ctx context.Context, event string, payload any) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Emit(ctx, event, payload); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("event", event).Msg("event not delivered")
	}
}

// validateAddress accepts absolute URLs only.
func validateAddress(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("invalid address %q: missing scheme", address)
	}
	return nil
}
