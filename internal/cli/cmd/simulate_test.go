package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestSimulation(t *testing.T) (*simulation, string) {
	t.Helper()
	workDir := t.TempDir()
	cfg := config.DefaultConfig()
	opts := shellOptions(cfg)
	opts.StepDelay = 0
	opts.FloatingSettle = 0
	opts.RecreateSettle = 0

	sim := newSimulation(workDir, 1000, 600, cfg, opts)
	t.Cleanup(sim.Close)
	return sim, workDir
}

func TestShellOptions_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.Steps = 4
	cfg.Eval.DefaultTimeoutSeconds = 3
	cfg.Panes.DefaultContentURL = "https://example.com/start"

	opts := shellOptions(cfg)
	assert.Equal(t, 4, opts.AnimationSteps)
	assert.Equal(t, "https://example.com/start", opts.DefaultContentURL)
	assert.Equal(t, cfg.Eval.DefaultTimeout(), opts.EvalTimeout)
	assert.Equal(t, cfg.Animation.StepDelay(), opts.StepDelay)
}

func TestSimulation_DefaultScenario(t *testing.T) {
	ctx := testCtx()
	sim, workDir := newTestSimulation(t)

	var out bytes.Buffer
	require.NoError(t, sim.Run(ctx, &out, styles.NewSimulateRenderer(styles.NewTheme()), defaultScenario))

	text := out.String()
	assert.Contains(t, text, string(entity.ContentLabel(1)))
	assert.Contains(t, text, "download-finished")
	assert.Contains(t, text, "refresh-downloads")
	assert.NotContains(t, text, "unknown step")

	_, err := os.Stat(filepath.Join(workDir, "downloads", "report.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(workDir, "data", entity.DownloadsLogFile))
	assert.NoError(t, err)

	snap := sim.shell.Session().Snapshot()
	assert.False(t, snap.ContentVisible)
	assert.Equal(t, entity.Slot(1), snap.ActiveSlot)
	assert.Equal(t, 40, snap.SplitRatio)
}

func TestSimulation_StepErrorsDoNotStopScenario(t *testing.T) {
	ctx := testCtx()
	sim, _ := newTestSimulation(t)

	var out bytes.Buffer
	steps := []string{"bogus", "toggle", "close:1", "switch:x", "resize:800", "eval:1+2"}
	require.NoError(t, sim.Run(ctx, &out, styles.NewSimulateRenderer(styles.NewTheme()), steps))

	text := out.String()
	assert.Contains(t, text, "unknown step")
	assert.Contains(t, text, entity.ErrSlotProtected.Error())
	assert.Contains(t, text, "expected two numbers")
	assert.True(t, sim.shell.Session().ContentVisible())
	assert.Contains(t, text, "result")
}

func TestSimulation_ResizeRunsQueuedLayout(t *testing.T) {
	ctx := testCtx()
	sim, _ := newTestSimulation(t)

	_, err := sim.step(ctx, "toggle")
	require.NoError(t, err)
	_, err = sim.step(ctx, "resize:1200x800")
	require.NoError(t, err)

	info, ok := sim.host.Pane(entity.LabelBaseUI)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, Width: 600, Height: 800}, info.Rect)
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		raw     string
		sep     string
		x, y    float64
		wantErr bool
	}{
		{raw: "80,22", sep: ",", x: 80, y: 22},
		{raw: "1440x900", sep: "x", x: 1440, y: 900},
		{raw: "1440", sep: "x", wantErr: true},
		{raw: "a,2", sep: ",", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			x, y, err := parsePair(tt.raw, tt.sep)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestFollowAnimationConfig_ReappliesTimingOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[animation]\nsteps = 8\nstep_delay_ms = 20\n"), 0o644))

	mgr, err := config.NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	sim, _ := newTestSimulation(t)
	followAnimationConfig(testCtx(), mgr, sim.shell)

	require.NoError(t, os.WriteFile(path, []byte("[animation]\nsteps = 4\nstep_delay_ms = 5\n"), 0o644))

	require.Eventually(t, func() bool {
		steps, delay := sim.shell.AnimationTiming()
		return steps == 4 && delay == 5*time.Millisecond
	}, 5*time.Second, 20*time.Millisecond)
}

func TestFollowAnimationConfig_NilManagerIsNoop(t *testing.T) {
	sim, _ := newTestSimulation(t)
	followAnimationConfig(testCtx(), nil, sim.shell)

	steps, _ := sim.shell.AnimationTiming()
	assert.Equal(t, config.DefaultConfig().Animation.Steps, steps)
}
