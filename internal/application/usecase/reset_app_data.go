package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// ResetAppDataOutput contains the results of a reset.
type ResetAppDataOutput struct {
	DataDir string
	// Preserved lists the files restored after the wipe.
	Preserved []string
}

// ResetAppDataUseCase wipes the application data directory while keeping the
// archive log and the downloads settings.
type ResetAppDataUseCase struct {
	fs  port.FileSystem
	xdg port.XDGPaths
}

// NewResetAppDataUseCase creates a new ResetAppDataUseCase.
func NewResetAppDataUseCase(fs port.FileSystem, xdg port.XDGPaths) *ResetAppDataUseCase {
	return &ResetAppDataUseCase{fs: fs, xdg: xdg}
}

// Execute removes the data directory and restores the preserved files.
func (uc *ResetAppDataUseCase) Execute(ctx context.Context) (*ResetAppDataOutput, error) {
	log := logging.FromContext(ctx)

	dataDir, err := uc.xdg.DataDir()
	if err != nil {
		return nil, err
	}
	out := &ResetAppDataOutput{DataDir: dataDir}

	exists, err := uc.fs.Exists(ctx, dataDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return out, nil
	}

	backups := make(map[string][]byte)
	for _, name := range entity.PreservedDataFiles() {
		path := filepath.Join(dataDir, name)
		ok, err := uc.fs.Exists(ctx, path)
		if err != nil || !ok {
			continue
		}
		data, err := uc.fs.ReadFile(ctx, path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to back up preserved file")
			continue
		}
		backups[name] = data
	}

	removeErr := uc.fs.RemoveAll(ctx, dataDir)
	if removeErr != nil {
		log.Warn().Err(removeErr).Str("path", dataDir).Msg("failed to remove data directory")
	}

	// Restore in a stable order.
	for _, name := range entity.PreservedDataFiles() {
		data, ok := backups[name]
		if !ok {
			continue
		}
		path := filepath.Join(dataDir, name)
		if err := uc.fs.WriteFile(ctx, path, data); err != nil {
			return out, fmt.Errorf("restore %s: %w", name, err)
		}
		out.Preserved = append(out.Preserved, name)
	}

	if removeErr != nil {
		return out, fmt.Errorf("reset app data: %w", removeErr)
	}

	log.Info().Str("path", dataDir).Strs("preserved", out.Preserved).Msg("app data reset")
	return out, nil
}
