package jsonlog

import (
	"context"
	"path/filepath"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
)

// ArchiveStore is the content-archive log. Entries are never deduplicated.
type ArchiveStore struct {
	doc        *document[[]entity.ArchiveRecord]
	maxEntries int
}

// NewArchiveStore creates the archive log in dataDir.
// A non-positive maxEntries selects entity.MaxArchiveRecords.
func NewArchiveStore(fsys port.FileSystem, dataDir string, maxEntries int) *ArchiveStore {
	if maxEntries <= 0 {
		maxEntries = entity.MaxArchiveRecords
	}
	return &ArchiveStore{
		doc:        newDocument[[]entity.ArchiveRecord](fsys, filepath.Join(dataDir, entity.ArchiveLogFile)),
		maxEntries: maxEntries,
	}
}

func (s *ArchiveStore) Path() string {
	return s.doc.path
}

func (s *ArchiveStore) Append(ctx context.Context, rec entity.ArchiveRecord) error {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	records := keepNewest(append(s.doc.readLocked(ctx), rec), s.maxEntries)
	return s.doc.writeLocked(ctx, records)
}

func (s *ArchiveStore) List(ctx context.Context) ([]entity.ArchiveRecord, error) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	records := s.doc.readLocked(ctx)
	if records == nil {
		records = []entity.ArchiveRecord{}
	}
	return records, nil
}

func (s *ArchiveStore) Clear(ctx context.Context) error {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	return s.doc.removeLocked(ctx)
}

var _ port.ArchiveLog = (*ArchiveStore)(nil)
