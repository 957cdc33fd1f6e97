// Package jsonlog stores capped record logs and small settings documents as
// pretty-printed JSON files.
package jsonlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/logging"
)

// document guards one JSON file. Every store owns its own document, so two
// logs never share a lock.
type document[T any] struct {
	mu   sync.Mutex
	fs   port.FileSystem
	path string
}

func newDocument[T any](fsys port.FileSystem, path string) *document[T] {
	return &document[T]{fs: fsys, path: path}
}

// readLocked decodes the file. Missing, unreadable and corrupt files all
// decode as the zero value; only the corrupt case is logged.
func (d *document[T]) readLocked(ctx context.Context) T {
	var out T

	data, err := d.fs.ReadFile(ctx, d.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(err).Str("path", d.path).Msg("unreadable json file, treating as empty")
		}
		return out
	}
	if len(data) == 0 {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", d.path).Msg("corrupt json file, treating as empty")
		var zero T
		return zero
	}
	return out
}

func (d *document[T]) writeLocked(ctx context.Context, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}
	if err := d.fs.WriteFile(ctx, d.path, data); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}

func (d *document[T]) removeLocked(ctx context.Context) error {
	exists, err := d.fs.Exists(ctx, d.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", d.path, err)
	}
	if !exists {
		return nil
	}
	if err := d.fs.Remove(ctx, d.path); err != nil {
		return fmt.Errorf("remove %s: %w", d.path, err)
	}
	return nil
}

// keepNewest drops the oldest entries so that at most limit remain.
func keepNewest[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return append([]T(nil), items[len(items)-limit:]...)
}
