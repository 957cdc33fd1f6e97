package entity

import (
	"strings"
	"time"
)

// TimestampLayout is the local-time format used in persisted records.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	// MaxDownloadRecords caps the downloads log.
	MaxDownloadRecords = 500
	// MaxArchiveRecords caps the archive log.
	MaxArchiveRecords = 1000
)

// Files kept in the application data directory.
const (
	ArchiveLogFile   = "archive_log.json"
	DownloadsLogFile = "downloads_log.json"
	SettingsFile     = "downloads_settings.json"
)

// PreservedDataFiles survive an application data reset.
func PreservedDataFiles() []string {
	return []string{ArchiveLogFile, SettingsFile}
}

// projectGroupName is recorded when an artifact comes from a grouped context.
const projectGroupName = "Project"

// DownloadRecord is one entry of the all-downloads log.
// Records are unique by AbsolutePath.
type DownloadRecord struct {
	Timestamp    string `json:"timestamp" jsonschema:"description=Local time the download finished (YYYY-MM-DD HH:MM:SS)"`
	Filename     string `json:"filename"`
	AbsolutePath string `json:"absolute_path"`
}

// ArchiveRecord is one entry of the content-archive log: an artifact a content
// pane produced.
type ArchiveRecord struct {
	Timestamp        string `json:"timestamp"`
	Slot             Slot   `json:"slot" jsonschema:"minimum=1,maximum=3"`
	Filename         string `json:"filename"`
	SourceURL        string `json:"source_url"`
	AbsolutePath     string `json:"absolute_path"`
	DerivedGroupName string `json:"derived_group_name"`
}

// Settings is the small persisted downloads settings file.
type Settings struct {
	// CustomDownloadDirectory overrides the host-suggested directory when set and present on disk.
	CustomDownloadDirectory *string `json:"custom_download_directory"`
}

// CustomDir returns the configured directory or "".
func (s Settings) CustomDir() string {
	if s.CustomDownloadDirectory == nil {
		return ""
	}
	return *s.CustomDownloadDirectory
}

// FormatTimestamp renders t in TimestampLayout using local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// DeriveGroupName returns the group name for a source URL, empty unless the URL
// points inside a project.
func DeriveGroupName(sourceURL string) string {
	if strings.Contains(sourceURL, "/project/") {
		return projectGroupName
	}
	return ""
}

// NewArchiveRecord builds an archive record stamped at now.
func NewArchiveRecord(now time.Time, slot Slot, filename, sourceURL, absolutePath string) ArchiveRecord {
	return ArchiveRecord{
		Timestamp:        FormatTimestamp(now),
		Slot:             slot,
		Filename:         filename,
		SourceURL:        sourceURL,
		AbsolutePath:     absolutePath,
		DerivedGroupName: DeriveGroupName(sourceURL),
	}
}
