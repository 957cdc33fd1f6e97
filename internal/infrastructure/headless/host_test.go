package headless_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/infrastructure/headless"
	"github.com/bnema/paneshell/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func contentSpec(slot entity.Slot, url string) port.PaneSpec {
	return port.PaneSpec{
		Label:  entity.ContentLabel(slot),
		Kind:   entity.PaneKindContent,
		URL:    url,
		Bounds: entity.Rect{X: 2000, Width: 500, Height: 600},
	}
}

func TestNew_HasBaseUI(t *testing.T) {
	h := headless.New(headless.WithWindowSize(1000, 600))

	w, hh, err := h.WindowSize(testCtx())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, w)
	assert.Equal(t, 600.0, hh)
	assert.True(t, h.HasPane(entity.LabelBaseUI))
	assert.Equal(t, []entity.PaneLabel{entity.LabelBaseUI}, h.Panes())
}

func TestCreatePane_RejectsDuplicates(t *testing.T) {
	ctx := testCtx()
	h := headless.New()

	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "https://example.com")))
	err := h.CreatePane(ctx, contentSpec(1, "https://example.com"))

	assert.ErrorIs(t, err, headless.ErrPaneExists)
	assert.Equal(t, 1, h.Creations(entity.ContentLabel(1)))
}

func TestCreatePane_FiresPageLoadedAndRunsInitScript(t *testing.T) {
	ctx := testCtx()
	h := headless.New()

	var loaded []string
	spec := contentSpec(2, "https://example.com/a")
	spec.InitScript = "window.__slot = 2;"
	spec.Hooks.OnPageLoaded = func(url string) { loaded = append(loaded, url) }

	require.NoError(t, h.CreatePane(ctx, spec))

	assert.Equal(t, []string{"https://example.com/a"}, loaded)
	info, ok := h.Pane(entity.ContentLabel(2))
	require.True(t, ok)
	assert.Equal(t, 1, info.Loads)
	assert.Equal(t, []string{"window.__slot = 2;"}, info.Scripts)
	assert.NotEmpty(t, info.ID)
}

func TestGeometry(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "")))

	require.NoError(t, h.SetPosition(ctx, entity.ContentLabel(1), 500, 0))
	require.NoError(t, h.SetSize(ctx, entity.ContentLabel(1), 500, 600))

	info, _ := h.Pane(entity.ContentLabel(1))
	assert.Equal(t, entity.Rect{X: 500, Y: 0, Width: 500, Height: 600}, info.Rect)

	err := h.SetPosition(ctx, entity.ContentLabel(3), 0, 0)
	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
}

func TestClosePane(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "")))

	require.NoError(t, h.ClosePane(ctx, entity.ContentLabel(1)))
	assert.False(t, h.HasPane(entity.ContentLabel(1)))
	assert.ErrorIs(t, h.ClosePane(ctx, entity.ContentLabel(1)), entity.ErrPaneNotFound)
}

func TestRaise_MovesToTop(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	require.NoError(t, h.CreatePane(ctx, port.PaneSpec{Label: entity.LabelToolbar, Kind: entity.PaneKindToolbar}))
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "")))

	require.NoError(t, h.Raise(ctx, entity.LabelToolbar))

	assert.Equal(t, []entity.PaneLabel{entity.LabelBaseUI, entity.ContentLabel(1), entity.LabelToolbar}, h.StackOrder())
}

func TestScripts_HistoryAndReload(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	label := entity.ContentLabel(1)
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "https://example.com/1")))
	require.NoError(t, h.Navigate(ctx, label, "https://example.com/2"))

	require.NoError(t, h.Eval(ctx, label, "history.back()"))
	url, err := h.PaneURL(ctx, label)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/1", url)

	require.NoError(t, h.Eval(ctx, label, "history.forward()"))
	url, _ = h.PaneURL(ctx, label)
	assert.Equal(t, "https://example.com/2", url)

	require.NoError(t, h.Eval(ctx, label, "location.reload()"))
	info, _ := h.Pane(label)
	assert.Equal(t, 1, info.Reloads)
	assert.Equal(t, 5, info.Loads)

	require.NoError(t, h.Eval(ctx, label, `location.href = "https://example.com/3"`))
	url, _ = h.PaneURL(ctx, label)
	assert.Equal(t, "https://example.com/3", url)
}

func TestScripts_ClickAndScroll(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	label := entity.ContentLabel(1)
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "https://example.com")))

	require.NoError(t, h.Eval(ctx, label, "const el = document.elementFromPoint(184, 551); if (el) { el.click(); }"))
	require.NoError(t, h.Eval(ctx, label, "const out = document.elementFromPoint(900, 10); if (out) { out.click(); }"))
	require.NoError(t, h.Eval(ctx, label, "window.scrollBy(0, 120)"))

	info, _ := h.Pane(label)
	assert.Equal(t, []headless.Point{{X: 184, Y: 551}}, info.Clicks)
	assert.Equal(t, []float64{120}, info.Scrolls)
}

func TestEval_SwallowsScriptErrors(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "")))

	assert.NoError(t, h.Eval(ctx, entity.ContentLabel(1), "throw new Error('boom')"))
	assert.ErrorIs(t, h.Eval(ctx, entity.ContentLabel(2), "1"), entity.ErrPaneNotFound)
}

func TestEvalWithResult(t *testing.T) {
	ctx := testCtx()
	h := headless.New()
	label := entity.ContentLabel(1)
	require.NoError(t, h.CreatePane(ctx, contentSpec(1, "https://example.com/x")))

	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "string", script: "location.href", want: "https://example.com/x"},
		{name: "number", script: "1 + 2", want: "3"},
		{name: "object", script: "({a: 1})", want: `{"a":1}`},
		{name: "undefined", script: "undefined", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make(chan string, 1)
			require.NoError(t, h.EvalWithResult(ctx, label, tt.script, func(result string, err error) {
				assert.NoError(t, err)
				results <- result
			}))

			select {
			case got := <-results:
				assert.Equal(t, tt.want, got)
			case <-time.After(2 * time.Second):
				t.Fatal("no result")
			}
		})
	}
}

func TestEvalWithResult_InterruptedByContext(t *testing.T) {
	h := headless.New()
	label := entity.ContentLabel(1)
	require.NoError(t, h.CreatePane(testCtx(), contentSpec(1, "")))

	ctx, cancel := context.WithTimeout(testCtx(), 50*time.Millisecond)
	defer cancel()

	errs := make(chan error, 1)
	require.NoError(t, h.EvalWithResult(ctx, label, "while (true) {}", func(_ string, err error) {
		errs <- err
	}))

	select {
	case err := <-errs:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("script was not interrupted")
	}

	// The pane keeps working after an interrupted script.
	require.NoError(t, h.Eval(testCtx(), label, "window.scrollBy(0, 1)"))
	info, _ := h.Pane(label)
	assert.Equal(t, []float64{1}, info.Scrolls)
}

func TestEvalWithResult_MissingPane(t *testing.T) {
	h := headless.New()
	err := h.EvalWithResult(testCtx(), entity.ContentLabel(3), "1", func(string, error) {})
	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
}

func TestEmit_RecordsAndNotifies(t *testing.T) {
	ctx := testCtx()
	h := headless.New()

	var mu sync.Mutex
	var seen []string
	h.Subscribe(func(ev headless.Event) {
		mu.Lock()
		seen = append(seen, ev.Name)
		mu.Unlock()
	})

	require.NoError(t, h.Emit(ctx, port.EventRefreshDownloads, nil))
	require.NoError(t, h.Emit(ctx, port.EventDownloadFailed, port.FilenamePayload{Filename: "a"}))

	assert.Equal(t, []string{port.EventRefreshDownloads, port.EventDownloadFailed}, seen)
	failed := h.EventsNamed(port.EventDownloadFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, port.FilenamePayload{Filename: "a"}, failed[0].Payload)

	h.ResetEvents()
	assert.Empty(t, h.Events())
}

func TestPost_QueuesUntilDrain(t *testing.T) {
	h := headless.New()
	ran := 0
	h.Post(func() { ran++ })
	h.Post(func() { ran++ })

	assert.Equal(t, 0, ran)
	assert.Equal(t, 2, h.Drain())
	assert.Equal(t, 2, ran)

	inline := headless.New(headless.WithInlinePost())
	inline.Post(func() { ran++ })
	assert.Equal(t, 3, ran)
}

func TestDownload_UsesRewrittenDestination(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	h := headless.New(headless.WithDownloadDir(dir))

	var requested port.DownloadRequest
	var finished port.DownloadResult
	spec := contentSpec(1, "")
	spec.Hooks.OnDownloadRequested = func(req port.DownloadRequest) string {
		requested = req
		return filepath.Join(dir, "renamed.txt")
	}
	spec.Hooks.OnDownloadFinished = func(res port.DownloadResult) { finished = res }
	require.NoError(t, h.CreatePane(ctx, spec))

	dest, err := h.Download(ctx, entity.ContentLabel(1), "https://example.com/files/report.txt?x=1", []byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "report.txt"), requested.SuggestedPath)
	assert.Equal(t, filepath.Join(dir, "renamed.txt"), dest)
	assert.True(t, finished.Success)
	assert.Equal(t, dest, finished.Path)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFailDownload_ReportsFailure(t *testing.T) {
	ctx := testCtx()
	h := headless.New(headless.WithDownloadDir(t.TempDir()))

	var finished *port.DownloadResult
	spec := contentSpec(1, "")
	spec.Hooks.OnDownloadFinished = func(res port.DownloadResult) { finished = &res }
	require.NoError(t, h.CreatePane(ctx, spec))

	_, err := h.FailDownload(ctx, entity.ContentLabel(1), "https://example.com/a.bin")
	require.NoError(t, err)
	require.NotNil(t, finished)
	assert.False(t, finished.Success)

	_, err = h.FailDownload(ctx, entity.ContentLabel(2), "https://example.com/a.bin")
	assert.True(t, errors.Is(err, entity.ErrPaneNotFound))
}

func TestViews_HideCapabilities(t *testing.T) {
	h := headless.New()

	_, raiser := h.WithoutRaise().(port.PaneRaiser)
	_, evaluator := h.WithoutRaise().(port.ScriptEvaluator)
	assert.False(t, raiser)
	assert.True(t, evaluator)

	_, evaluator = h.Minimal().(port.ScriptEvaluator)
	assert.False(t, evaluator)
}
