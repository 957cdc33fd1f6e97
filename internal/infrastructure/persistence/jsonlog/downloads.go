package jsonlog

import (
	"context"
	"path/filepath"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// DownloadStore is the downloads log: unique by absolute path, newest
// maxEntries kept.
type DownloadStore struct {
	doc        *document[[]entity.DownloadRecord]
	maxEntries int
}

// NewDownloadStore creates the downloads log in dataDir.
// A non-positive maxEntries selects entity.MaxDownloadRecords.
func NewDownloadStore(fsys port.FileSystem, dataDir string, maxEntries int) *DownloadStore {
	if maxEntries <= 0 {
		maxEntries = entity.MaxDownloadRecords
	}
	return &DownloadStore{
		doc:        newDocument[[]entity.DownloadRecord](fsys, filepath.Join(dataDir, entity.DownloadsLogFile)),
		maxEntries: maxEntries,
	}
}

// Path returns the log file location.
func (s *DownloadStore) Path() string {
	return s.doc.path
}

func (s *DownloadStore) Append(ctx context.Context, rec entity.DownloadRecord) (bool, error) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	records := s.doc.readLocked(ctx)
	for _, existing := range records {
		if existing.AbsolutePath == rec.AbsolutePath {
			logging.FromContext(ctx).Debug().Str("path", rec.AbsolutePath).Msg("download already logged")
			return false, nil
		}
	}

	records = keepNewest(append(records, rec), s.maxEntries)
	if err := s.doc.writeLocked(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}

// List drops records whose file is gone and rewrites the log when it pruned
// anything. The rewrite is best effort.
func (s *DownloadStore) List(ctx context.Context) ([]entity.DownloadRecord, error) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	records := s.doc.readLocked(ctx)
	kept := make([]entity.DownloadRecord, 0, len(records))
	for _, rec := range records {
		if rec.AbsolutePath == "" {
			continue
		}
		exists, err := s.doc.fs.Exists(ctx, rec.AbsolutePath)
		if err != nil || !exists {
			continue
		}
		kept = append(kept, rec)
	}

	if len(kept) != len(records) {
		if err := s.doc.writeLocked(ctx, kept); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to rewrite pruned downloads log")
		}
	}
	return kept, nil
}

func (s *DownloadStore) Remove(ctx context.Context, absolutePath string) (bool, error) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	records := s.doc.readLocked(ctx)
	kept := make([]entity.DownloadRecord, 0, len(records))
	for _, rec := range records {
		if rec.AbsolutePath != absolutePath {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.doc.writeLocked(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear deletes the log file if present.
func (s *DownloadStore) Clear(ctx context.Context) error {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	return s.doc.removeLocked(ctx)
}

var _ port.DownloadLog = (*DownloadStore)(nil)
