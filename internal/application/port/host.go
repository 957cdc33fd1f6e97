package port

import (
	"context"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// PaneSpec describes a native pane to create.
type PaneSpec struct {
	Label entity.PaneLabel
	Kind  entity.PaneKind
	// URL is the initial address. Floating panes load bundled pages instead.
	URL string
	// Bounds is the initial rectangle, usually off-screen.
	Bounds entity.Rect
	// Transparent asks for a transparent background (floating panes).
	Transparent bool
	// InitScript runs on every page load inside the pane.
	InitScript string
	Hooks      PaneHooks
}

// PaneHooks defines callback handlers for pane events.
// Hosts may invoke them from any goroutine.
type PaneHooks struct {
	// OnPageLoaded is called when a page finished loading.
	OnPageLoaded func(url string)
	// OnDownloadRequested is called before a download starts. The returned path
	// replaces the host-suggested destination; an empty string keeps it.
	OnDownloadRequested func(req DownloadRequest) string
	// OnDownloadFinished is called once per download attempt.
	OnDownloadFinished func(res DownloadResult)
}

// Host is the native toolkit that owns panes.
// Panes are addressed by label only; handles never cross this boundary.
// Implementations are responsible for dispatching calls to their UI thread.
type Host interface {
	// WindowSize returns the logical size of the main window.
	WindowSize(ctx context.Context) (width, height float64, err error)
	// HasPane reports whether a pane with label exists.
	HasPane(label entity.PaneLabel) bool
	// Panes lists existing pane labels.
	Panes() []entity.PaneLabel

	CreatePane(ctx context.Context, spec PaneSpec) error
	ClosePane(ctx context.Context, label entity.PaneLabel) error
	SetPosition(ctx context.Context, label entity.PaneLabel, x, y float64) error
	SetSize(ctx context.Context, label entity.PaneLabel, width, height float64) error

	Navigate(ctx context.Context, label entity.PaneLabel, url string) error
	// Eval runs script in the pane without waiting for a result.
	Eval(ctx context.Context, label entity.PaneLabel, script string) error
	// PaneURL returns the current address of the pane.
	PaneURL(ctx context.Context, label entity.PaneLabel) (string, error)

	// Post schedules fn on the host's UI thread.
	Post(fn func())
}

// ScriptEvaluator is an optional Host capability: evaluation with a result.
// done must be called at most once.
type ScriptEvaluator interface {
	EvalWithResult(ctx context.Context, label entity.PaneLabel, script string, done func(result string, err error)) error
}

// PaneRaiser is an optional Host capability: explicit z-order control.
// Hosts without it get floating panes re-stacked by recreation.
type PaneRaiser interface {
	Raise(ctx context.Context, label entity.PaneLabel) error
}
