package port

import (
	"context"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	// DownloadEventStarted indicates a download has begun.
	DownloadEventStarted DownloadEventType = iota
	// DownloadEventFinished indicates a download completed successfully.
	DownloadEventFinished
	// DownloadEventFailed indicates a download failed.
	DownloadEventFailed
)

// String returns a human-readable representation of the event type.
func (t DownloadEventType) String() string {
	switch t {
	case DownloadEventStarted:
		return "started"
	case DownloadEventFinished:
		return "finished"
	case DownloadEventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadRequest is what the host knows when a download is requested.
type DownloadRequest struct {
	SourceURL string
	// SuggestedPath is the destination the host picked on its own.
	SuggestedPath string
}

// DownloadResult is what the host reports when a download ends.
type DownloadResult struct {
	SourceURL string
	// Path is the final destination, empty when the host does not know it.
	Path    string
	Success bool
}

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type DownloadEventType
	// ID correlates the events of one download attempt.
	ID          string
	Slot        entity.Slot
	Filename    string
	Destination string
	SourceURL   string
	Error       error // Set when Type is DownloadEventFailed
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}
