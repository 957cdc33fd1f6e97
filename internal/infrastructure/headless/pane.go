package headless

import (
	"context"
	"slices"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

const blankURL = "about:blank"

type navKind int

const (
	navPush navKind = iota
	navBack
	navForward
	navReload
)

type navigation struct {
	kind navKind
	url  string
}

type pane struct {
	host *Host
	id   string
	spec port.PaneSpec

	mu      sync.Mutex
	rect    entity.Rect
	history []string
	cursor  int
	loads   int
	reloads int
	clicks  []Point
	scrolls []float64
	scripts []string

	// vmMu serializes script execution. pending is written by script
	// callbacks and applied once the script returned.
	vmMu    sync.Mutex
	vm      *sobek.Runtime
	pending *navigation
}

func newPane(h *Host, spec port.PaneSpec) *pane {
	return &pane{
		host: h,
		id:   newPaneID(),
		spec: spec,
		rect: spec.Bounds,
	}
}

func (p *pane) currentURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.history) == 0 {
		return blankURL
	}
	return p.history[p.cursor]
}

func (p *pane) load(ctx context.Context, url string) {
	p.apply(ctx, navigation{kind: navPush, url: url})
}

// apply moves through the history, starts a fresh script realm, runs the
// init script and reports the load.
func (p *pane) apply(ctx context.Context, nav navigation) {
	p.mu.Lock()
	switch nav.kind {
	case navPush:
		if len(p.history) == 0 {
			p.history = []string{nav.url}
			p.cursor = 0
		} else {
			p.history = append(p.history[:p.cursor+1], nav.url)
			p.cursor++
		}
	case navBack:
		if p.cursor == 0 {
			p.mu.Unlock()
			return
		}
		p.cursor--
	case navForward:
		if p.cursor >= len(p.history)-1 {
			p.mu.Unlock()
			return
		}
		p.cursor++
	case navReload:
		if len(p.history) == 0 {
			p.mu.Unlock()
			return
		}
		p.reloads++
	}
	p.loads++
	url := p.history[p.cursor]
	initScript := p.spec.InitScript
	onLoaded := p.spec.Hooks.OnPageLoaded
	p.mu.Unlock()

	p.vmMu.Lock()
	p.vm = nil
	p.vmMu.Unlock()

	if initScript != "" {
		if _, err := p.run(ctx, initScript); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("label", string(p.spec.Label)).Msg("init script failed")
		}
	}
	if onLoaded != nil {
		onLoaded(url)
	}
}

// run evaluates script in the pane realm. Cancelling ctx interrupts it.
func (p *pane) run(ctx context.Context, script string) (sobek.Value, error) {
	p.vmMu.Lock()
	vm := p.runtimeLocked()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(context.Cause(ctx))
	})
	value, err := vm.RunString(script)
	if !stop() {
		// The interrupt fired or is about to; this realm is no longer usable.
		p.vm = nil
	}
	pending := p.pending
	p.pending = nil
	p.vmMu.Unlock()

	p.mu.Lock()
	p.scripts = append(p.scripts, script)
	p.mu.Unlock()

	if pending != nil {
		p.apply(ctx, *pending)
	}
	return value, err
}

func (p *pane) runtimeLocked() *sobek.Runtime {
	if p.vm != nil {
		return p.vm
	}

	vm := sobek.New()
	global := vm.GlobalObject()
	_ = vm.Set("window", global)

	location := vm.NewObject()
	_ = location.DefineAccessorProperty("href",
		vm.ToValue(func(sobek.FunctionCall) sobek.Value {
			return vm.ToValue(p.currentURL())
		}),
		vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			p.pending = &navigation{kind: navPush, url: call.Argument(0).String()}
			return sobek.Undefined()
		}),
		sobek.FLAG_FALSE, sobek.FLAG_TRUE)
	_ = location.Set("reload", func() {
		p.pending = &navigation{kind: navReload}
	})
	_ = vm.Set("location", location)

	history := vm.NewObject()
	_ = history.Set("back", func() {
		p.pending = &navigation{kind: navBack}
	})
	_ = history.Set("forward", func() {
		p.pending = &navigation{kind: navForward}
	})
	_ = vm.Set("history", history)

	document := vm.NewObject()
	_ = document.Set("elementFromPoint", func(x, y float64) sobek.Value {
		if !p.containsLocal(x, y) {
			return sobek.Null()
		}
		el := vm.NewObject()
		_ = el.Set("click", func() {
			p.mu.Lock()
			p.clicks = append(p.clicks, Point{X: x, Y: y})
			p.mu.Unlock()
		})
		return el
	})
	_ = vm.Set("document", document)

	_ = global.Set("scrollBy", func(_, dy float64) {
		p.mu.Lock()
		p.scrolls = append(p.scrolls, dy)
		p.mu.Unlock()
	})

	p.vm = vm
	return vm
}

func (p *pane) containsLocal(x, y float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return entity.Rect{Width: p.rect.Width, Height: p.rect.Height}.Contains(x, y)
}

func (p *pane) info() PaneInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	url := blankURL
	if len(p.history) > 0 {
		url = p.history[p.cursor]
	}
	return PaneInfo{
		ID:          p.id,
		Label:       p.spec.Label,
		Kind:        p.spec.Kind,
		URL:         url,
		Rect:        p.rect,
		Transparent: p.spec.Transparent,
		Loads:       p.loads,
		Reloads:     p.reloads,
		Clicks:      slices.Clone(p.clicks),
		Scrolls:     slices.Clone(p.scrolls),
		Scripts:     slices.Clone(p.scripts),
	}
}
