package headless

import "github.com/bnema/paneshell/internal/application/port"

type withoutRaise struct {
	port.Host
	port.ScriptEvaluator
}

type hostOnly struct {
	port.Host
}

// WithoutRaise exposes h without the PaneRaiser capability, like toolkits
// that can only restack by recreating panes.
func (h *Host) WithoutRaise() port.Host {
	return withoutRaise{Host: h, ScriptEvaluator: h}
}

// Minimal exposes only the required port.Host methods.
func (h *Host) Minimal() port.Host {
	return hostOnly{Host: h}
}
