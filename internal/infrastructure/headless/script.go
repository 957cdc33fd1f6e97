package headless

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// Eval runs script and discards its result. Script errors are logged only.
func (h *Host) Eval(ctx context.Context, label entity.PaneLabel, script string) error {
	p, err := h.lookup(label)
	if err != nil {
		return fmt.Errorf("eval in %s: %w", label, err)
	}
	if _, err := p.run(ctx, script); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("label", string(label)).Msg("script raised")
	}
	return nil
}

// EvalWithResult runs script on its own goroutine and reports through done.
// Cancelling ctx interrupts a running script.
func (h *Host) EvalWithResult(
	ctx context.Context,
	label entity.PaneLabel,
	script string,
	done func(result string, err error),
) error {
	p, err := h.lookup(label)
	if err != nil {
		return fmt.Errorf("eval in %s: %w", label, err)
	}

	delay := h.evalDelay
	go func() {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				done("", context.Cause(ctx))
				return
			}
		}

		value, err := p.run(ctx, script)
		if err != nil {
			done("", err)
			return
		}
		done(exportResult(value))
	}()
	return nil
}

// exportResult renders a script value the way a devtools protocol would:
// strings verbatim, nullish as empty, everything else as JSON.
func exportResult(v sobek.Value) (string, error) {
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return "", nil
	}
	exported := v.Export()
	if s, ok := exported.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(exported)
	if err != nil {
		return v.String(), nil
	}
	return string(data), nil
}
