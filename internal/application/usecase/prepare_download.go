package usecase

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/download"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// PrepareDownloadInput contains the inputs for preparing a download destination.
type PrepareDownloadInput struct {
	// SourceURL is the address the download was requested from.
	SourceURL string
	// SuggestedPath is the destination the host picked on its own.
	// Its directory is used when no custom directory is configured.
	SuggestedPath string
	// Reserved reports paths already promised to downloads still in progress.
	// They are skipped like files on disk. Optional.
	Reserved func(path string) bool
}

// PrepareDownloadOutput contains the resolved download destination.
type PrepareDownloadOutput struct {
	// Filename is the final, collision-free file name.
	Filename string
	// DestinationPath is the full path where the download must be saved.
	DestinationPath string
}

// PrepareDownloadUseCase resolves where an intercepted download is written.
// The filename comes from the source URL and the directory from the settings
// or the host suggestion; the result never overwrites an existing file.
type PrepareDownloadUseCase struct {
	fs         port.FileSystem
	settings   port.SettingsStore
	bundleName string
	now        func() time.Time
}

// NewPrepareDownloadUseCase creates a new PrepareDownloadUseCase.
// An empty bundleName selects download.DefaultBundleFilename.
func NewPrepareDownloadUseCase(fs port.FileSystem, settings port.SettingsStore, bundleName string) *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{
		fs:         fs,
		settings:   settings,
		bundleName: bundleName,
		now:        time.Now,
	}
}

// Execute resolves the download filename and destination path.
func (u *PrepareDownloadUseCase) Execute(ctx context.Context, input PrepareDownloadInput) (*PrepareDownloadOutput, error) {
	log := logging.FromContext(ctx)

	name := download.FilenameFromURL(input.SourceURL, u.bundleName)

	dir := customDownloadDir(ctx, u.fs, u.settings)
	if dir == "" && input.SuggestedPath != "" {
		dir = filepath.Dir(input.SuggestedPath)
	}
	if dir == "" {
		return nil, entity.ErrNoDownloadDirectory
	}

	destPath := download.UniqueFilepath(dir, name, func(path string) bool {
		if input.Reserved != nil && input.Reserved(path) {
			return true
		}
		exists, err := u.fs.Exists(ctx, path)
		return err == nil && exists
	}, u.now)

	log.Debug().
		Str("url", input.SourceURL).
		Str("suggested", input.SuggestedPath).
		Str("resolved", name).
		Str("destPath", destPath).
		Msg("prepared download destination")

	return &PrepareDownloadOutput{
		Filename:        filepath.Base(destPath),
		DestinationPath: destPath,
	}, nil
}

// customDownloadDir returns the configured download directory when it is set
// and still present on disk, "" otherwise.
func customDownloadDir(ctx context.Context, fs port.FileSystem, settings port.SettingsStore) string {
	if settings == nil {
		return ""
	}
	s, err := settings.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("download settings unavailable")
		return ""
	}
	dir := s.CustomDir()
	if dir == "" {
		return ""
	}
	exists, err := fs.Exists(ctx, dir)
	if err != nil || !exists {
		return ""
	}
	return dir
}
