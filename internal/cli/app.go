// Package cli wires the command-line application.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/build"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/infrastructure/filesystem"
	"github.com/bnema/paneshell/internal/infrastructure/persistence/jsonlog"
	xdgadapter "github.com/bnema/paneshell/internal/infrastructure/xdg"
	"github.com/bnema/paneshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	DataDir   string

	FS        *filesystem.Adapter
	XDG       *xdgadapter.Adapter
	Downloads *jsonlog.DownloadStore
	Archive   *jsonlog.ArchiveStore
	Settings  *jsonlog.SettingsStore

	// Use cases
	ManageDownloadsUC *usecase.ManageDownloadsUseCase
	ManageArchiveUC   *usecase.ManageArchiveUseCase
	ResetAppDataUC    *usecase.ResetAppDataUseCase
	PrepareDownloadUC *usecase.PrepareDownloadUseCase
	RecordDownloadUC  *usecase.RecordDownloadUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and creates every store and use case.
func NewApp() (*App, error) {
	cfg := loadConfig()

	logger, logCleanup := logging.NewWithFile(cfg.Logging.LoggerConfig())
	ctx := logging.WithContext(context.Background(), logger)

	xdg := xdgadapter.New()
	dataDir, err := xdg.DataDir()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	fs := filesystem.New()
	downloads := jsonlog.NewDownloadStore(fs, dataDir, cfg.Downloads.MaxEntries)
	archive := jsonlog.NewArchiveStore(fs, dataDir, cfg.Archive.MaxEntries)
	settings := jsonlog.NewSettingsStore(fs, dataDir)

	logger.Debug().Str("data_dir", dataDir).Msg("cli app initialized")

	return &App{
		Config:            cfg,
		Theme:             styles.NewTheme(),
		DataDir:           dataDir,
		FS:                fs,
		XDG:               xdg,
		Downloads:         downloads,
		Archive:           archive,
		Settings:          settings,
		ManageDownloadsUC: usecase.NewManageDownloadsUseCase(downloads, fs, settings),
		ManageArchiveUC:   usecase.NewManageArchiveUseCase(archive),
		ResetAppDataUC:    usecase.NewResetAppDataUseCase(fs, xdg),
		PrepareDownloadUC: usecase.NewPrepareDownloadUseCase(fs, settings, cfg.Downloads.BundleFilename),
		RecordDownloadUC:  usecase.NewRecordDownloadUseCase(downloads),
		ctx:               ctx,
		logCleanup:        logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be used.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		return config.DefaultConfig()
	}
	return config.Get()
}
