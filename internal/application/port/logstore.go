package port

import (
	"context"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// DownloadLog persists the all-downloads log.
type DownloadLog interface {
	// Append adds rec unless a record with the same absolute path exists.
	// It reports whether the record was added.
	Append(ctx context.Context, rec entity.DownloadRecord) (bool, error)
	// List returns records whose files still exist, oldest first.
	List(ctx context.Context) ([]entity.DownloadRecord, error)
	// Remove drops the record for absolutePath.
	Remove(ctx context.Context, absolutePath string) (bool, error)
	Clear(ctx context.Context) error
}

// ArchiveLog persists the content-archive log.
type ArchiveLog interface {
	Append(ctx context.Context, rec entity.ArchiveRecord) error
	List(ctx context.Context) ([]entity.ArchiveRecord, error)
	Clear(ctx context.Context) error
}

// SettingsStore persists the downloads settings file.
type SettingsStore interface {
	// Load returns the stored settings, empty when missing or unreadable.
	Load(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}
