package headless

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Download runs a successful download of content from sourceURL in label and
// returns the destination the file was written to.
func (h *Host) Download(ctx context.Context, label entity.PaneLabel, sourceURL string, content []byte) (string, error) {
	hooks, dest, err := h.requestDownload(label, sourceURL)
	if err != nil {
		return "", err
	}

	writeErr := os.MkdirAll(filepath.Dir(dest), dirPerm)
	if writeErr == nil {
		writeErr = os.WriteFile(dest, content, filePerm)
	}

	if hooks.OnDownloadFinished != nil {
		hooks.OnDownloadFinished(port.DownloadResult{
			SourceURL: sourceURL,
			Path:      dest,
			Success:   writeErr == nil,
		})
	}
	if writeErr != nil {
		return dest, fmt.Errorf("write download: %w", writeErr)
	}
	return dest, nil
}

// FailDownload runs a download of sourceURL in label that fails after the
// request phase. It returns the destination that was agreed on.
func (h *Host) FailDownload(_ context.Context, label entity.PaneLabel, sourceURL string) (string, error) {
	hooks, dest, err := h.requestDownload(label, sourceURL)
	if err != nil {
		return "", err
	}
	if hooks.OnDownloadFinished != nil {
		hooks.OnDownloadFinished(port.DownloadResult{SourceURL: sourceURL, Path: dest, Success: false})
	}
	return dest, nil
}

func (h *Host) requestDownload(label entity.PaneLabel, sourceURL string) (port.PaneHooks, string, error) {
	p, err := h.lookup(label)
	if err != nil {
		return port.PaneHooks{}, "", fmt.Errorf("download in %s: %w", label, err)
	}

	hooks := p.spec.Hooks
	dest := h.suggestedPath(sourceURL)
	if hooks.OnDownloadRequested != nil {
		if rewritten := hooks.OnDownloadRequested(port.DownloadRequest{
			SourceURL:     sourceURL,
			SuggestedPath: dest,
		}); rewritten != "" {
			dest = rewritten
		}
	}
	return hooks, dest, nil
}

// suggestedPath mimics a browser default: the last URL path segment inside
// the download directory.
func (h *Host) suggestedPath(sourceURL string) string {
	name := "download"
	if u, err := url.Parse(sourceURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		}
	}
	return filepath.Join(h.downloadDir, name)
}
