package port

import "context"

// Events broadcast to every pane.
const (
	EventContentPageLoaded        = "content-page-loaded"
	EventContentNavigationStarted = "content-navigation-started"
	EventContentURLChanged        = "content-url-changed"
	EventDownloadStarted          = "download-started"
	EventDownloadFinished         = "download-finished"
	EventDownloadFailed           = "download-failed"
	EventRefreshDownloads         = "refresh-downloads"
	EventDownloadsPopupClosed     = "downloads-popup-closed"
)

// EventEmitter broadcasts named events to all panes.
// Delivery is fire-and-forget and at most once.
type EventEmitter interface {
	Emit(ctx context.Context, event string, payload any) error
}

// SlotURLPayload is carried by the page loaded, navigation started and URL
// changed events.
type SlotURLPayload struct {
	Slot int    `json:"slot"`
	URL  string `json:"url"`
}

// FilenamePayload is carried by download started and download failed.
type FilenamePayload struct {
	Filename string `json:"filename"`
}

// DownloadFinishedPayload is carried by download finished.
type DownloadFinishedPayload struct {
	Filename     string `json:"filename"`
	Slot         int    `json:"slot"`
	URL          string `json:"url"`
	AbsolutePath string `json:"absolute_path"`
}
