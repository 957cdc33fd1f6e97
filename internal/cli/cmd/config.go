package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of config.toml",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload config.toml on every change and print the effective settings",
	RunE:  runConfigWatch,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configWatchCmd)
}

func runConfigWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	mgr := config.GetManager()
	if mgr == nil {
		return fmt.Errorf("configuration not loaded")
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	printConfig := func(cfg *config.Config) {
		opts := shellOptions(cfg)
		fmt.Fprintf(out, "%s steps=%d step_delay=%s eval_timeout=%s default_url=%s log_level=%s\n",
			a.Theme.SuccessStyle.Render("config"),
			opts.AnimationSteps, opts.StepDelay, opts.EvalTimeout, opts.DefaultContentURL, cfg.Logging.Level)
	}

	mgr.OnConfigChange(printConfig)
	if err := mgr.Watch(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("file", mgr.GetConfigFile()).Msg("watching configuration")
	printConfig(mgr.Get())

	<-ctx.Done()
	return nil
}
