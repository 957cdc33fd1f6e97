// Package headless is an in-memory port.Host. It keeps pane geometry,
// navigation history and stacking order, runs pane scripts in a JavaScript
// runtime and records every broadcast event. The CLI simulator and the shell
// tests drive the orchestration layer through it.
package headless

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

// ErrPaneExists is returned when creating a label that is already live.
var ErrPaneExists = errors.New("pane already exists")

const (
	defaultWidth  = 1280
	defaultHeight = 800
)

// Point is a position in pane-local coordinates.
type Point struct {
	X, Y float64
}

// PaneInfo is a snapshot of one pane.
type PaneInfo struct {
	ID          string
	Label       entity.PaneLabel
	Kind        entity.PaneKind
	URL         string
	Rect        entity.Rect
	Transparent bool
	Loads       int
	Reloads     int
	Clicks      []Point
	Scrolls     []float64
	Scripts     []string
}

// Option configures a Host.
type Option func(*Host)

// WithWindowSize sets the initial logical window size.
func WithWindowSize(width, height float64) Option {
	return func(h *Host) {
		h.width, h.height = width, height
	}
}

// WithDownloadDir sets the directory the host suggests for downloads.
func WithDownloadDir(dir string) Option {
	return func(h *Host) {
		h.downloadDir = dir
	}
}

// WithCreateDelay makes every CreatePane take at least d.
func WithCreateDelay(d time.Duration) Option {
	return func(h *Host) {
		h.createDelay = d
	}
}

// WithEvalDelay delays the start of every EvalWithResult by d.
func WithEvalDelay(d time.Duration) Option {
	return func(h *Host) {
		h.evalDelay = d
	}
}

// WithInlinePost runs posted tasks immediately instead of queueing them.
func WithInlinePost() Option {
	return func(h *Host) {
		h.inlinePost = true
	}
}

// Host implements port.Host, port.ScriptEvaluator, port.PaneRaiser and
// port.EventEmitter in memory.
type Host struct {
	mu          sync.Mutex
	width       float64
	height      float64
	panes       map[entity.PaneLabel]*pane
	order       []entity.PaneLabel // bottom first
	creations   map[entity.PaneLabel]int
	events      []Event
	listeners   []func(Event)
	downloadDir string
	createDelay time.Duration
	evalDelay   time.Duration
	inlinePost  bool
	loop        mainloop.Queue
}

// New creates a host holding only the base UI pane.
func New(opts ...Option) *Host {
	h := &Host{
		width:       defaultWidth,
		height:      defaultHeight,
		panes:       make(map[entity.PaneLabel]*pane),
		creations:   make(map[entity.PaneLabel]int),
		downloadDir: filepath.Join(os.TempDir(), "paneshell-downloads"),
	}
	for _, opt := range opts {
		opt(h)
	}

	ui := newPane(h, port.PaneSpec{
		Label:  entity.LabelBaseUI,
		Kind:   entity.PaneKindBaseUI,
		URL:    "paneshell://ui",
		Bounds: entity.Rect{Width: h.width, Height: h.height},
	})
	ui.history = []string{"paneshell://ui"}
	h.panes[entity.LabelBaseUI] = ui
	h.order = append(h.order, entity.LabelBaseUI)
	h.creations[entity.LabelBaseUI] = 1
	return h
}

func (h *Host) WindowSize(_ context.Context) (float64, float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height, nil
}

// Resize changes the window size. Callers notify the shell themselves.
func (h *Host) Resize(width, height float64) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
}

func (h *Host) HasPane(label entity.PaneLabel) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.panes[label]
	return ok
}

// Panes lists labels in stacking order, bottom first.
func (h *Host) Panes() []entity.PaneLabel {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.order)
}

// StackOrder is Panes under a name that reads better in assertions.
func (h *Host) StackOrder() []entity.PaneLabel {
	return h.Panes()
}

func (h *Host) CreatePane(ctx context.Context, spec port.PaneSpec) error {
	if h.createDelay > 0 {
		time.Sleep(h.createDelay)
	}

	h.mu.Lock()
	if _, ok := h.panes[spec.Label]; ok {
		h.mu.Unlock()
		return fmt.Errorf("create %s: %w", spec.Label, ErrPaneExists)
	}
	p := newPane(h, spec)
	h.panes[spec.Label] = p
	h.order = append(h.order, spec.Label)
	h.creations[spec.Label]++
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("label", string(spec.Label)).
		Str("pane_id", p.id).
		Str("url", spec.URL).
		Msg("headless pane created")

	if spec.URL != "" {
		p.load(ctx, spec.URL)
	}
	return nil
}

func (h *Host) ClosePane(ctx context.Context, label entity.PaneLabel) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.panes[label]; !ok {
		return fmt.Errorf("close %s: %w", label, entity.ErrPaneNotFound)
	}
	delete(h.panes, label)
	h.order = slices.DeleteFunc(h.order, func(l entity.PaneLabel) bool { return l == label })

	logging.FromContext(ctx).Debug().Str("label", string(label)).Msg("headless pane closed")
	return nil
}

func (h *Host) SetPosition(_ context.Context, label entity.PaneLabel, x, y float64) error {
	p, err := h.lookup(label)
	if err != nil {
		return fmt.Errorf("set position of %s: %w", label, err)
	}
	p.mu.Lock()
	p.rect.X, p.rect.Y = x, y
	p.mu.Unlock()
	return nil
}

func (h *Host) SetSize(_ context.Context, label entity.PaneLabel, width, height float64) error {
	p, err := h.lookup(label)
	if err != nil {
		return fmt.Errorf("set size of %s: %w", label, err)
	}
	p.mu.Lock()
	p.rect.Width, p.rect.Height = width, height
	p.mu.Unlock()
	return nil
}

func (h *Host) Navigate(ctx context.Context, label entity.PaneLabel, url string) error {
	p, err := h.lookup(label)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", label, err)
	}
	p.load(ctx, url)
	return nil
}

// SetURL changes the address without a page load, as in-page routing does.
func (h *Host) SetURL(label entity.PaneLabel, url string) error {
	p, err := h.lookup(label)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.history[p.cursor] = url
	p.mu.Unlock()
	return nil
}

func (h *Host) PaneURL(_ context.Context, label entity.PaneLabel) (string, error) {
	p, err := h.lookup(label)
	if err != nil {
		return "", err
	}
	return p.currentURL(), nil
}

// Raise moves label to the top of the stacking order.
func (h *Host) Raise(_ context.Context, label entity.PaneLabel) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.panes[label]; !ok {
		return fmt.Errorf("raise %s: %w", label, entity.ErrPaneNotFound)
	}
	h.order = slices.DeleteFunc(h.order, func(l entity.PaneLabel) bool { return l == label })
	h.order = append(h.order, label)
	return nil
}

// Post queues fn for Drain, or runs it at once with WithInlinePost.
func (h *Host) Post(fn func()) {
	if h.inlinePost {
		fn()
		return
	}
	h.loop.Post(fn)
}

// Drain runs posted tasks and returns how many ran.
func (h *Host) Drain() int {
	return h.loop.Drain()
}

// Pane returns a snapshot of label.
func (h *Host) Pane(label entity.PaneLabel) (PaneInfo, bool) {
	p, err := h.lookup(label)
	if err != nil {
		return PaneInfo{}, false
	}
	return p.info(), true
}

// Creations counts how many times label was created.
func (h *Host) Creations(label entity.PaneLabel) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.creations[label]
}

func (h *Host) lookup(label entity.PaneLabel) (*pane, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.panes[label]
	if !ok {
		return nil, entity.ErrPaneNotFound
	}
	return p, nil
}

func newPaneID() string {
	return uuid.NewString()
}

var (
	_ port.Host            = (*Host)(nil)
	_ port.ScriptEvaluator = (*Host)(nil)
	_ port.PaneRaiser      = (*Host)(nil)
	_ port.EventEmitter    = (*Host)(nil)
)
