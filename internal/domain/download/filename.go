// Package download holds the pure filename rules applied to intercepted downloads.
package download

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultFilename is used when no valid filename can be determined.
	DefaultFilename = "file"
	// DefaultBundleFilename names multi-file bundle downloads.
	DefaultBundleFilename = "files.zip"

	// MaxCollisionSuffix bounds the " (N)" search before falling back to a timestamp.
	MaxCollisionSuffix = 999

	pathParam    = "path"
	bundleMarker = "download-files"
)

// SanitizeFilename sanitizes a filename to prevent path traversal attacks.
// It extracts only the base name and handles edge cases like "." or "..".
func SanitizeFilename(name string) string {
	// filepath.Base only handles the OS-native separator, so on Linux
	// backslashes would not be treated as path separators.
	name = strings.ReplaceAll(name, "\\", "/")

	clean := filepath.Base(name)
	if clean == "." || clean == ".." || clean == "/" || clean == "" {
		return DefaultFilename
	}

	return clean
}

// FilenameFromURL derives the canonical filename of a download from its source URL.
//
// Rules, first match wins:
//  1. a "path" query parameter: percent-decoded, last "/" segment
//  2. a multi-file bundle URL: bundleName
//  3. the last path segment before the query string
//
// The result is always sanitized.
func FilenameFromURL(rawURL, bundleName string) string {
	if bundleName == "" {
		bundleName = DefaultBundleFilename
	}

	if name, ok := filenameFromPathParam(rawURL); ok {
		return SanitizeFilename(name)
	}

	if strings.Contains(rawURL, bundleMarker) {
		return SanitizeFilename(bundleName)
	}

	rest := rawURL
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		rest = rest[i+1:]
	}
	if decoded, err := url.PathUnescape(rest); err == nil {
		rest = decoded
	}

	return SanitizeFilename(rest)
}

func filenameFromPathParam(rawURL string) (string, bool) {
	_, query, found := strings.Cut(rawURL, "?")
	if !found {
		return "", false
	}
	query, _, _ = strings.Cut(query, "#")

	for part := range strings.SplitSeq(query, "&") {
		key, value, _ := strings.Cut(part, "=")
		if key != pathParam {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			decoded = value
		}
		if i := strings.LastIndex(decoded, "/"); i >= 0 {
			decoded = decoded[i+1:]
		}
		return decoded, true
	}
	return "", false
}

// FilenameFromDestination extracts the filename from a file:// URI or path.
func FilenameFromDestination(dest string) string {
	path := strings.TrimPrefix(dest, "file://")
	base := filepath.Base(path)
	if base == "." || base == "" || base == "/" {
		return DefaultFilename
	}
	return base
}

// SplitExt splits a filename into stem and extension. A leading dot does not
// start an extension, so ".bashrc" has none.
func SplitExt(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	if ext == filename {
		return filename, ""
	}
	return strings.TrimSuffix(filename, ext), ext
}

// UniqueFilepath returns a path inside dir that does not collide with an existing file.
//
// The exists function should return true if the given path already exists.
// Candidates are "name.ext", "name (1).ext" ... "name (999).ext"; past the
// bound a millisecond timestamp taken from now is appended instead.
func UniqueFilepath(dir, filename string, exists func(path string) bool, now func() time.Time) string {
	destPath := filepath.Join(dir, filename)
	if !exists(destPath) {
		return destPath
	}

	stem, ext := SplitExt(filename)
	for i := 1; i <= MaxCollisionSuffix; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}

	if now == nil {
		now = time.Now
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, now().UnixMilli(), ext))
}
