package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/app/shell"
	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/infrastructure/filesystem"
	"github.com/bnema/paneshell/internal/infrastructure/headless"
	"github.com/bnema/paneshell/internal/infrastructure/persistence/jsonlog"
	"github.com/bnema/paneshell/internal/logging"
)

var (
	simulateWidth    float64
	simulateHeight   float64
	simulateAnimated bool
)

// defaultScenario opens the content side, downloads a file, then exercises
// slots, the popup and a resize.
var defaultScenario = []string{
	"toggle",
	"download:https://files.example.com/report.pdf",
	"switch:2",
	"ratio:40",
	"popup",
	"click:80,22",
	"scroll:120",
	"resize:1440x900",
	"close:2",
	"hide",
	"toggle",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [step...]",
	Short: "Drive the pane orchestration against an in-memory window",
	Long: `Run a scenario against an in-memory host and print the session and the
geometry of every pane after each step, followed by the events it broadcast.

Steps:
  toggle                 show or hide the content side
  switch:N[=URL]         bring slot N to the front, optionally at URL
  ratio:N                set the UI share of the window (35-65)
  popup | hide           show or hide the downloads popup
  back | forward | reload | recreate
                         toolbar commands on the active slot
  download:URL           download URL from the active slot
  fail:URL               start a download from the active slot that fails
  click:X,Y              click at a toolbar-relative point
  scroll:DY              scroll the active slot
  eval:SCRIPT            evaluate SCRIPT in the active slot and print the result
  resize:WxH             resize the window
  close:N                close slot N
  reset                  close every content pane and reset the session

Nothing outside a temporary directory is touched.`,
	Example: `  paneshell simulate
  paneshell simulate toggle switch:3=https://claude.ai/new ratio:60 popup`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().Float64Var(&simulateWidth, "width", 1280, "initial window width")
	simulateCmd.Flags().Float64Var(&simulateHeight, "height", 800, "initial window height")
	simulateCmd.Flags().BoolVar(&simulateAnimated, "animated", false, "keep the configured animation and settle delays")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	steps := args
	if len(steps) == 0 {
		steps = defaultScenario
	}

	opts := shellOptions(a.Config)
	if !simulateAnimated {
		opts.StepDelay = 0
		opts.FloatingSettle = 0
		opts.RecreateSettle = 0
	}

	workDir, err := os.MkdirTemp("", "paneshell-simulate-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	sim := newSimulation(workDir, simulateWidth, simulateHeight, a.Config, opts)
	defer sim.Close()

	if simulateAnimated {
		followAnimationConfig(a.Ctx(), config.GetManager(), sim.shell)
	}

	return sim.Run(a.Ctx(), cmd.OutOrStdout(), styles.NewSimulateRenderer(a.Theme), steps)
}

// shellOptions maps the configuration onto shell options.
func shellOptions(cfg *config.Config) shell.Options {
	opts := shell.DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.DefaultContentURL = cfg.Panes.DefaultContentURL
	opts.AnimationSteps = cfg.Animation.Steps
	opts.StepDelay = cfg.Animation.StepDelay()
	opts.FloatingSettle = cfg.Panes.FloatingSettle()
	opts.RecreateSettle = cfg.Panes.RecreateSettle()
	opts.EvalTimeout = cfg.Eval.DefaultTimeout()
	return opts
}

// followAnimationConfig re-applies animation timings to sh whenever
// config.toml changes.
func followAnimationConfig(ctx context.Context, mgr *config.Manager, sh *shell.Shell) {
	if mgr == nil {
		return
	}
	mgr.OnConfigChange(func(cfg *config.Config) {
		sh.ApplyAnimation(shellOptions(cfg))
	})
	if err := mgr.Watch(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("config watch unavailable")
	}
}

type simulation struct {
	host  *headless.Host
	shell *shell.Shell
}

func newSimulation(workDir string, width, height float64, cfg *config.Config, opts shell.Options) *simulation {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fs := filesystem.New()
	dataDir := filepath.Join(workDir, "data")
	downloads := jsonlog.NewDownloadStore(fs, dataDir, cfg.Downloads.MaxEntries)
	settings := jsonlog.NewSettingsStore(fs, dataDir)

	host := headless.New(
		headless.WithWindowSize(width, height),
		headless.WithDownloadDir(filepath.Join(workDir, "downloads")),
	)
	sh := shell.New(shell.Deps{
		Host:    host,
		Emitter: host,
		Prepare: usecase.NewPrepareDownloadUseCase(fs, settings, cfg.Downloads.BundleFilename),
		Record:  usecase.NewRecordDownloadUseCase(downloads),
	}, opts)

	return &simulation{host: host, shell: sh}
}

func (s *simulation) Close() {
	s.shell.Close()
}

// Run executes steps in order. A failing step is reported and the scenario
// goes on; only a write failure stops it.
func (s *simulation) Run(ctx context.Context, w io.Writer, r *styles.SimulateRenderer, steps []string) error {
	log := logging.FromContext(ctx)

	for i, step := range steps {
		s.host.ResetEvents()

		out, err := s.step(ctx, step)
		if err != nil {
			log.Debug().Err(err).Str("step", step).Msg("simulation step failed")
			if _, werr := fmt.Fprintln(w, r.RenderError(step, err)); werr != nil {
				return werr
			}
			continue
		}

		snap := s.shell.Session().Snapshot()
		if _, err := fmt.Fprintln(w, r.RenderStep(i+1, step, snap.ContentVisible, int(snap.ActiveSlot), snap.SplitRatio, s.paneRows())); err != nil {
			return err
		}
		if out != "" {
			if _, err := fmt.Fprintln(w, r.RenderEvent("result", out)); err != nil {
				return err
			}
		}
		for _, ev := range s.host.Events() {
			if _, err := fmt.Fprintln(w, r.RenderEvent(ev.Name, ev.Payload)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *simulation) paneRows() []styles.PaneRow {
	labels := s.host.StackOrder()
	rows := make([]styles.PaneRow, 0, len(labels))
	for _, label := range labels {
		info, ok := s.host.Pane(label)
		if !ok {
			continue
		}
		rows = append(rows, styles.PaneRow{Label: label, Rect: info.Rect})
	}
	return rows
}

// step runs one command and returns its printable result, if any.
func (s *simulation) step(ctx context.Context, step string) (string, error) {
	name, arg, _ := strings.Cut(step, ":")
	sh := s.shell

	switch name {
	case "toggle":
		_, err := sh.ToggleContentVisibility(ctx)
		return "", err
	case "switch":
		raw, address, _ := strings.Cut(arg, "=")
		slot, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("slot %q: %w", raw, err)
		}
		return "", sh.SwitchToSlotWithAddress(ctx, slot, address)
	case "ratio":
		ratio, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("ratio %q: %w", arg, err)
		}
		return "", sh.SetSplitRatio(ctx, ratio)
	case "popup":
		return "", sh.ShowDownloadsPopup(ctx)
	case "hide":
		return "", sh.HideDownloadsPopup(ctx)
	case "back":
		return "", sh.ToolbarBack(ctx)
	case "forward":
		return "", sh.ToolbarForward(ctx)
	case "reload":
		return "", sh.ToolbarReload(ctx)
	case "recreate":
		return "", sh.ToolbarRecreate(ctx)
	case "download":
		return s.host.Download(ctx, s.activeLabel(), arg, []byte("simulated "+arg))
	case "fail":
		_, err := s.host.FailDownload(ctx, s.activeLabel(), arg)
		return "", err
	case "click":
		x, y, err := parsePair(arg, ",")
		if err != nil {
			return "", err
		}
		return "", sh.ForwardClick(ctx, x, y)
	case "scroll":
		dy, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", fmt.Errorf("scroll %q: %w", arg, err)
		}
		return "", sh.ForwardScroll(ctx, dy)
	case "eval":
		return sh.EvalInSlotWithResult(ctx, int(sh.Session().ActiveSlot()), arg, 0)
	case "resize":
		width, height, err := parsePair(arg, "x")
		if err != nil {
			return "", err
		}
		s.host.Resize(width, height)
		sh.HandleResize(ctx)
		s.host.Drain()
		return "", nil
	case "close":
		slot, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("slot %q: %w", arg, err)
		}
		_, err = sh.CloseSlot(ctx, slot)
		return "", err
	case "reset":
		return "", sh.ResetSession(ctx)
	default:
		return "", errors.New("unknown step")
	}
}

func (s *simulation) activeLabel() entity.PaneLabel {
	return entity.ContentLabel(s.shell.Session().ActiveSlot())
}

func parsePair(raw, sep string) (float64, float64, error) {
	a, b, ok := strings.Cut(raw, sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected two numbers separated by %q, got %q", sep, raw)
	}
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
