package usecase

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// ManageDownloadsUseCase handles the downloads log, the downloaded files and
// the download directory setting.
type ManageDownloadsUseCase struct {
	log      port.DownloadLog
	fs       port.FileSystem
	settings port.SettingsStore
}

// NewManageDownloadsUseCase creates a new ManageDownloadsUseCase.
func NewManageDownloadsUseCase(log port.DownloadLog, fs port.FileSystem, settings port.SettingsStore) *ManageDownloadsUseCase {
	return &ManageDownloadsUseCase{log: log, fs: fs, settings: settings}
}

// List returns the downloads whose files still exist.
func (uc *ManageDownloadsUseCase) List(ctx context.Context) ([]entity.DownloadRecord, error) {
	return uc.log.List(ctx)
}

// Delete removes a downloaded file and its record.
// It reports whether anything was removed.
func (uc *ManageDownloadsUseCase) Delete(ctx context.Context, absolutePath string) (bool, error) {
	fileRemoved := false
	exists, err := uc.fs.Exists(ctx, absolutePath)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", absolutePath, err)
	}
	if exists {
		if err := uc.fs.Remove(ctx, absolutePath); err != nil {
			return false, fmt.Errorf("remove %s: %w", absolutePath, err)
		}
		fileRemoved = true
	}

	recordRemoved, err := uc.log.Remove(ctx, absolutePath)
	if err != nil {
		return fileRemoved, fmt.Errorf("remove download record: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("path", absolutePath).
		Bool("file", fileRemoved).
		Bool("record", recordRemoved).
		Msg("download deleted")

	return fileRemoved || recordRemoved, nil
}

// DeleteAll removes every logged file, then the log itself.
// Files that cannot be removed are skipped. It returns the number of files removed.
func (uc *ManageDownloadsUseCase) DeleteAll(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	records, err := uc.log.List(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, rec := range records {
		if rec.AbsolutePath == "" {
			continue
		}
		if err := uc.fs.Remove(ctx, rec.AbsolutePath); err != nil {
			log.Warn().Err(err).Str("path", rec.AbsolutePath).Msg("failed to remove download")
			continue
		}
		deleted++
	}

	if err := uc.log.Clear(ctx); err != nil {
		return deleted, fmt.Errorf("clear downloads log: %w", err)
	}

	log.Info().Int("deleted", deleted).Msg("downloads cleared")
	return deleted, nil
}

// DownloadDir returns the custom download directory, or "" when the host
// default is in use.
func (uc *ManageDownloadsUseCase) DownloadDir(ctx context.Context) string {
	return customDownloadDir(ctx, uc.fs, uc.settings)
}

// SetDownloadDir stores a custom download directory. An empty path restores
// the host default. Non-empty paths must exist and be directories.
func (uc *ManageDownloadsUseCase) SetDownloadDir(ctx context.Context, path string) error {
	if path == "" {
		return uc.settings.Save(ctx, entity.Settings{})
	}

	exists, err := uc.fs.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("download directory %s: %w", path, fs.ErrNotExist)
	}

	isDir, err := uc.fs.IsDirectory(ctx, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !isDir {
		return fmt.Errorf("download directory %s: %w", path, entity.ErrNotDirectory)
	}

	if err := uc.settings.Save(ctx, entity.Settings{CustomDownloadDirectory: &path}); err != nil {
		return fmt.Errorf("save download settings: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", path).Msg("download directory updated")
	return nil
}
