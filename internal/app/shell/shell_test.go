package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/paneshell/internal/app/shell"
	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/infrastructure/headless"
	"github.com/bnema/paneshell/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func fastOptions() shell.Options {
	opts := shell.DefaultOptions()
	opts.StepDelay = 0
	opts.FloatingSettle = 0
	opts.RecreateSettle = 0
	return opts
}

// newTestShell returns a shell over a 1000x600 headless window.
func newTestShell(t *testing.T, opts ...headless.Option) (*shell.Shell, *headless.Host) {
	t.Helper()
	h := headless.New(append([]headless.Option{headless.WithWindowSize(1000, 600)}, opts...)...)
	s := shell.New(shell.Deps{Host: h, Emitter: h}, fastOptions())
	t.Cleanup(s.Close)
	return s, h
}

func rectOf(t *testing.T, h *headless.Host, label entity.PaneLabel) entity.Rect {
	t.Helper()
	info, ok := h.Pane(label)
	require.True(t, ok, "pane %s missing", label)
	return info.Rect
}

func TestEnsureContentPane_ConcurrentCallsCreateOnce(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t, headless.WithCreateDelay(20*time.Millisecond))

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			return s.Panes().EnsureContentPane(ctx, 2, "")
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, h.Creations(entity.ContentLabel(2)))
	assert.Equal(t, 1, h.Creations(entity.LabelToolbar))
	assert.Equal(t, 1, h.Creations(entity.LabelPopup))
}

func TestEnsureContentPane_CreatesOffscreen(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)

	require.NoError(t, s.Panes().EnsureContentPane(ctx, 2, ""))

	assert.Equal(t, entity.Rect{X: 2000, Width: 500, Height: 600}, rectOf(t, h, entity.ContentLabel(2)))
	assert.Equal(t, float64(-500), rectOf(t, h, entity.LabelToolbar).X)
	assert.Equal(t, float64(-500), rectOf(t, h, entity.LabelPopup).X)

	info, _ := h.Pane(entity.LabelToolbar)
	assert.True(t, info.Transparent)
	assert.Equal(t, shell.ToolbarURL, info.URL)

	loaded := h.EventsNamed(port.EventContentPageLoaded)
	require.Len(t, loaded, 1)
	assert.Equal(t, port.SlotURLPayload{Slot: 2, URL: shell.DefaultContentURL}, loaded[0].Payload)
}

func TestEnsureContentPane_InvalidSlot(t *testing.T) {
	s, _ := newTestShell(t)
	assert.ErrorIs(t, s.Panes().EnsureContentPane(testCtx(), 4, ""), entity.ErrInvalidSlot)
}

func TestRaiseFloatingPanes(t *testing.T) {
	t.Run("host raises in place", func(t *testing.T) {
		ctx := testCtx()
		s, h := newTestShell(t)

		require.NoError(t, s.Panes().EnsureContentPane(ctx, 1, ""))
		require.NoError(t, s.Panes().EnsureContentPane(ctx, 2, ""))

		assert.Equal(t, []entity.PaneLabel{
			entity.LabelBaseUI,
			entity.ContentLabel(1),
			entity.ContentLabel(2),
			entity.LabelToolbar,
			entity.LabelPopup,
		}, h.StackOrder())
		assert.Equal(t, 1, h.Creations(entity.LabelToolbar))
	})

	t.Run("host recreates", func(t *testing.T) {
		ctx := testCtx()
		h := headless.New(headless.WithWindowSize(1000, 600))
		s := shell.New(shell.Deps{Host: h.WithoutRaise(), Emitter: h}, fastOptions())
		defer s.Close()

		require.NoError(t, s.Panes().EnsureContentPane(ctx, 1, ""))
		require.NoError(t, s.Panes().EnsureContentPane(ctx, 2, ""))

		order := h.StackOrder()
		assert.Equal(t, []entity.PaneLabel{entity.LabelToolbar, entity.LabelPopup}, order[len(order)-2:])
		assert.Equal(t, 2, h.Creations(entity.LabelToolbar))
		assert.Equal(t, 2, h.Creations(entity.LabelPopup))
	})
}

func TestCloseSlot_PermanentSlotIsProtected(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))

	active, err := s.CloseSlot(ctx, 1)
	require.ErrorIs(t, err, entity.ErrSlotProtected)
	assert.Equal(t, 1, active)
	assert.True(t, h.HasPane(entity.ContentLabel(1)))

	_, err = s.CloseSlot(ctx, 0)
	assert.ErrorIs(t, err, entity.ErrInvalidSlot)
}

func TestCloseSlot_ActiveFallsBackToPermanent(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))
	require.NoError(t, s.SwitchToSlot(ctx, 2))
	require.Equal(t, entity.Slot(2), s.Session().ActiveSlot())

	active, err := s.CloseSlot(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
	assert.False(t, h.HasPane(entity.ContentLabel(2)))

	// Closing a slot without a pane is fine.
	active, err = s.CloseSlot(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestToggleContentVisibility(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.SetSplitRatio(ctx, 40))

	visible, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, 40, s.SplitRatio())
	assert.Equal(t, entity.Rect{Width: 400, Height: 600}, rectOf(t, h, entity.LabelBaseUI))
	assert.Equal(t, entity.Rect{X: 400, Width: 600, Height: 600}, rectOf(t, h, entity.ContentLabel(1)))

	visible, err = s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Equal(t, 40, s.SplitRatio())
	assert.Equal(t, entity.Rect{Width: 1000, Height: 600}, rectOf(t, h, entity.LabelBaseUI))
	for _, label := range []entity.PaneLabel{entity.ContentLabel(1), entity.LabelToolbar, entity.LabelPopup} {
		assert.GreaterOrEqual(t, rectOf(t, h, label).X, float64(2000), label)
	}
}

func TestLayout_Scenario1000x600(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)

	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	require.NoError(t, s.ShowDownloadsPopup(ctx))
	assert.True(t, s.PopupShown())

	assert.Equal(t, entity.Rect{Width: 500, Height: 600}, rectOf(t, h, entity.LabelBaseUI))
	assert.Equal(t, entity.Rect{X: 500, Width: 500, Height: 600}, rectOf(t, h, entity.ContentLabel(1)))
	assert.Equal(t, entity.Rect{X: 674, Y: 546, Width: 152, Height: 44}, rectOf(t, h, entity.LabelToolbar))
	assert.Equal(t, entity.Rect{X: 590, Y: 178, Width: 320, Height: 360}, rectOf(t, h, entity.LabelPopup))
	assert.Len(t, h.EventsNamed(port.EventRefreshDownloads), 1)

	require.NoError(t, s.HideDownloadsPopup(ctx))
	assert.Equal(t, float64(2000), rectOf(t, h, entity.LabelPopup).X)
	assert.Len(t, h.EventsNamed(port.EventDownloadsPopupClosed), 1)
}

func TestSwitchToSlot_InactiveSlotsStayOffscreen(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)

	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SwitchToSlot(ctx, 3))

	assert.Equal(t, entity.Rect{X: 500, Width: 500, Height: 600}, rectOf(t, h, entity.ContentLabel(3)))
	assert.Equal(t, float64(2000), rectOf(t, h, entity.ContentLabel(1)).X)

	assert.Equal(t, shell.StateView{Visible: true, ActiveSlot: 3, ExistingSlots: []int{1, 3}}, s.SessionState(ctx))
	assert.ErrorIs(t, s.SwitchToSlot(ctx, 9), entity.ErrInvalidSlot)
}

func TestSwitchToSlot_ReloadsBlankPane(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))
	require.NoError(t, h.Navigate(ctx, entity.ContentLabel(1), "about:blank"))

	require.NoError(t, s.SwitchToSlot(ctx, 1))
	assert.Equal(t, shell.DefaultContentURL, s.SlotURL(ctx, 1))
}

func TestSwitchToSlotWithAddress(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)

	require.NoError(t, s.SwitchToSlotWithAddress(ctx, 2, "https://claude.ai/chat/a"))
	assert.True(t, h.HasPane(entity.ContentLabel(1)))
	assert.Equal(t, "https://claude.ai/chat/a", s.SlotURL(ctx, 2))
	assert.Equal(t, 1, h.Creations(entity.ContentLabel(2)))

	require.NoError(t, s.SwitchToSlotWithAddress(ctx, 2, "https://claude.ai/chat/b"))
	assert.Equal(t, "https://claude.ai/chat/b", s.SlotURL(ctx, 2))
	assert.Equal(t, 1, h.Creations(entity.ContentLabel(2)))
	assert.Equal(t, entity.Slot(2), s.Session().ActiveSlot())

	assert.Error(t, s.SwitchToSlotWithAddress(ctx, 2, "not a url"))
}

func TestSlotURL_AndGenerationStatus(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))

	require.NoError(t, h.SetURL(entity.ContentLabel(1), "https://claude.ai/chat/abc#generating"))
	assert.Equal(t, "https://claude.ai/chat/abc", s.SlotURL(ctx, 1))
	assert.True(t, s.GenerationInProgress(ctx, 1))

	assert.Equal(t, shell.DefaultContentURL, s.SlotURL(ctx, 3))
	assert.False(t, s.GenerationInProgress(ctx, 3))
}

func TestNavigateSlot(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))

	require.NoError(t, s.NavigateSlot(ctx, 1, "https://claude.ai/project/p1"))
	assert.Equal(t, "https://claude.ai/project/p1", s.SlotURL(ctx, 1))

	started := h.EventsNamed(port.EventContentNavigationStarted)
	require.Len(t, started, 1)
	assert.Equal(t, port.SlotURLPayload{Slot: 1, URL: "https://claude.ai/project/p1"}, started[0].Payload)

	require.NoError(t, s.NewChatInSlot(ctx, 1))
	assert.Equal(t, shell.DefaultContentURL, s.SlotURL(ctx, 1))

	// A slot without a pane is left alone.
	require.NoError(t, s.NavigateSlot(ctx, 2, "https://claude.ai/new"))
	assert.False(t, h.HasPane(entity.ContentLabel(2)))

	require.NoError(t, s.NotifyURLChange(ctx, 1, "https://claude.ai/chat/x"))
	assert.Len(t, h.EventsNamed(port.EventContentURLChanged), 1)
}

func TestToolbarNavigation(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.PreloadContent(ctx))
	require.NoError(t, s.NavigateSlot(ctx, 1, "https://claude.ai/chat/a"))

	require.NoError(t, s.ToolbarBack(ctx))
	assert.Equal(t, shell.DefaultContentURL, s.SlotURL(ctx, 1))

	require.NoError(t, s.ToolbarForward(ctx))
	assert.Equal(t, "https://claude.ai/chat/a", s.SlotURL(ctx, 1))

	require.NoError(t, s.ToolbarReload(ctx))
	info, _ := h.Pane(entity.ContentLabel(1))
	assert.Equal(t, 1, info.Reloads)
}

func TestToolbarRecreate(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	require.NoError(t, s.NavigateSlot(ctx, 1, "https://claude.ai/chat/a"))

	require.NoError(t, s.ToolbarRecreate(ctx))

	assert.Equal(t, 2, h.Creations(entity.ContentLabel(1)))
	assert.Equal(t, shell.DefaultContentURL, s.SlotURL(ctx, 1))
	assert.Equal(t, entity.Rect{X: 500, Width: 500, Height: 600}, rectOf(t, h, entity.ContentLabel(1)))
}

func TestForwardClickAndScroll(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)

	require.NoError(t, s.ForwardClick(ctx, 10, 5))
	require.NoError(t, s.ForwardScroll(ctx, 120))

	info, _ := h.Pane(entity.ContentLabel(1))
	assert.Equal(t, []headless.Point{{X: 184, Y: 551}}, info.Clicks)
	assert.Equal(t, []float64{120}, info.Scrolls)
}

func TestEvalInSlotWithResult(t *testing.T) {
	t.Run("returns the result", func(t *testing.T) {
		ctx := testCtx()
		s, _ := newTestShell(t)
		require.NoError(t, s.PreloadContent(ctx))

		got, err := s.EvalInSlotWithResult(ctx, 1, "1 + 2", time.Second)
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("missing pane", func(t *testing.T) {
		s, _ := newTestShell(t)
		_, err := s.EvalInSlotWithResult(testCtx(), 2, "1", time.Second)
		assert.ErrorIs(t, err, entity.ErrPaneNotFound)
	})

	t.Run("times out", func(t *testing.T) {
		ctx := testCtx()
		s, _ := newTestShell(t, headless.WithEvalDelay(500*time.Millisecond))
		require.NoError(t, s.PreloadContent(ctx))

		_, err := s.EvalInSlotWithResult(ctx, 1, "1", 20*time.Millisecond)
		assert.ErrorIs(t, err, entity.ErrEvalTimeout)
	})

	t.Run("host without the capability", func(t *testing.T) {
		ctx := testCtx()
		h := headless.New()
		s := shell.New(shell.Deps{Host: h.Minimal()}, fastOptions())
		defer s.Close()
		require.NoError(t, s.PreloadContent(ctx))

		_, err := s.EvalInSlotWithResult(ctx, 1, "1", time.Second)
		assert.ErrorIs(t, err, entity.ErrCapabilityUnsupported)
	})
}

func TestHandleResize_CoalescesBursts(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)

	h.Resize(1200, 800)
	for range 5 {
		s.HandleResize(ctx)
	}
	assert.Equal(t, float64(500), rectOf(t, h, entity.LabelBaseUI).Width)

	assert.Equal(t, 1, h.Drain())
	assert.Equal(t, entity.Rect{Width: 600, Height: 800}, rectOf(t, h, entity.LabelBaseUI))
	assert.Equal(t, entity.Rect{X: 600, Width: 600, Height: 800}, rectOf(t, h, entity.ContentLabel(1)))
}

func TestResetSession(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	require.NoError(t, s.SwitchToSlot(ctx, 2))
	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SetSplitRatio(ctx, 60))

	require.NoError(t, s.ResetSession(ctx))

	assert.Equal(t, []entity.PaneLabel{entity.LabelBaseUI}, h.Panes())
	assert.Equal(t, entity.SessionSnapshot{
		ContentVisible: false,
		ActiveSlot:     1,
		SplitRatio:     entity.DefaultSplitRatio,
	}, s.Session().Snapshot())
	assert.Equal(t, entity.Rect{Width: 1000, Height: 600}, rectOf(t, h, entity.LabelBaseUI))
}

func TestSetSplitRatio_Clamps(t *testing.T) {
	ctx := testCtx()
	s, _ := newTestShell(t)

	require.NoError(t, s.SetSplitRatio(ctx, 10))
	assert.Equal(t, entity.MinSplitRatio, s.SplitRatio())
	require.NoError(t, s.SetSplitRatio(ctx, 90))
	assert.Equal(t, entity.MaxSplitRatio, s.SplitRatio())
}

func TestRelayout_MissingBaseUI(t *testing.T) {
	ctx := testCtx()
	s, h := newTestShell(t)
	_, err := s.ToggleContentVisibility(ctx)
	require.NoError(t, err)

	require.NoError(t, h.ClosePane(ctx, entity.LabelBaseUI))
	assert.ErrorIs(t, s.SetSplitRatio(ctx, 45), entity.ErrBaseUIMissing)
}
