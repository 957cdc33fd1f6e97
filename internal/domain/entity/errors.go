package entity

import "errors"

var (
	// ErrInvalidSlot is returned when a slot is outside [MinSlot, MaxSlot].
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrSlotProtected is returned when closing the permanent slot.
	ErrSlotProtected = errors.New("slot 1 cannot be closed")
	// ErrBaseUIMissing is fatal to layout: there is no degraded layout without the UI pane.
	ErrBaseUIMissing = errors.New("base ui pane not found")
	// ErrPaneNotFound is returned by operations that need the pane to exist.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrCapabilityUnsupported is returned when the host lacks an optional capability.
	ErrCapabilityUnsupported = errors.New("capability not supported by host")
	// ErrEvalTimeout is returned when a synchronous evaluation does not complete in time.
	ErrEvalTimeout = errors.New("script evaluation timed out")
	// ErrNotDirectory is returned when a configured download path is a regular file.
	ErrNotDirectory = errors.New("path is not a directory")
	// ErrNoDownloadDirectory is returned when neither a custom nor a suggested directory is known.
	ErrNoDownloadDirectory = errors.New("no download directory available")
)
