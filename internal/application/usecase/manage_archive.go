package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// AddArchiveEntryInput describes an artifact a content pane produced.
type AddArchiveEntryInput struct {
	Slot      int
	Filename  string
	SourceURL string
	// AbsolutePath may be empty when the artifact was not saved to disk.
	AbsolutePath string
}

// ManageArchiveUseCase handles the content-archive log.
type ManageArchiveUseCase struct {
	log port.ArchiveLog
	now func() time.Time
}

// NewManageArchiveUseCase creates a new ManageArchiveUseCase.
func NewManageArchiveUseCase(log port.ArchiveLog) *ManageArchiveUseCase {
	return &ManageArchiveUseCase{log: log, now: time.Now}
}

// Add validates and appends an archive entry.
func (uc *ManageArchiveUseCase) Add(ctx context.Context, input AddArchiveEntryInput) (entity.ArchiveRecord, error) {
	slot, err := entity.ParseSlot(input.Slot)
	if err != nil {
		return entity.ArchiveRecord{}, err
	}
	if input.Filename == "" {
		return entity.ArchiveRecord{}, fmt.Errorf("archive entry: filename is required")
	}

	rec := entity.NewArchiveRecord(uc.now(), slot, input.Filename, input.SourceURL, input.AbsolutePath)
	if err := uc.log.Append(ctx, rec); err != nil {
		return entity.ArchiveRecord{}, fmt.Errorf("append archive entry: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int("slot", int(slot)).
		Str("filename", rec.Filename).
		Str("group", rec.DerivedGroupName).
		Msg("archive entry added")

	return rec, nil
}

// List returns every archive entry, oldest first.
func (uc *ManageArchiveUseCase) List(ctx context.Context) ([]entity.ArchiveRecord, error) {
	return uc.log.List(ctx)
}

// Clear removes the archive log.
func (uc *ManageArchiveUseCase) Clear(ctx context.Context) error {
	if err := uc.log.Clear(ctx); err != nil {
		return fmt.Errorf("clear archive log: %w", err)
	}
	return nil
}
