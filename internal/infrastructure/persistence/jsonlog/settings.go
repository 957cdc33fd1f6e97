package jsonlog

import (
	"context"
	"path/filepath"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
)

// SettingsStore holds the downloads settings file.
type SettingsStore struct {
	doc *document[entity.Settings]
}

func NewSettingsStore(fsys port.FileSystem, dataDir string) *SettingsStore {
	return &SettingsStore{
		doc: newDocument[entity.Settings](fsys, filepath.Join(dataDir, entity.SettingsFile)),
	}
}

// Load never fails: a missing or corrupt file yields empty settings.
func (s *SettingsStore) Load(ctx context.Context) (entity.Settings, error) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	return s.doc.readLocked(ctx), nil
}

func (s *SettingsStore) Save(ctx context.Context, settings entity.Settings) error {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	return s.doc.writeLocked(ctx, settings)
}

var _ port.SettingsStore = (*SettingsStore)(nil)
