package download

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal filename",
			input:    "document.pdf",
			expected: "document.pdf",
		},
		{
			name:     "path traversal with parent dirs",
			input:    "../../../etc/passwd",
			expected: "passwd",
		},
		{
			name:     "windows separators",
			input:    `..\..\secret.txt`,
			expected: "secret.txt",
		},
		{
			name:     "dot dot",
			input:    "..",
			expected: DefaultFilename,
		},
		{
			name:     "empty",
			input:    "",
			expected: DefaultFilename,
		},
		{
			name:     "trailing slash",
			input:    "dir/",
			expected: "dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "path parameter is decoded",
			url:      "https://claude.ai/api/files/download?path=%2Fmnt%2Fdata%2Freport%20final.pdf&x=1",
			expected: "report final.pdf",
		},
		{
			name:     "path parameter wins over bundle marker",
			url:      "https://claude.ai/download-files?path=notes.md",
			expected: "notes.md",
		},
		{
			name:     "bundle",
			url:      "https://claude.ai/api/conversations/abc/download-files",
			expected: DefaultBundleFilename,
		},
		{
			name:     "last segment before query",
			url:      "https://cdn.example.com/assets/image.png?sig=abc",
			expected: "image.png",
		},
		{
			name:     "empty last segment",
			url:      "https://example.com/",
			expected: DefaultFilename,
		},
		{
			name:     "path parameter with traversal",
			url:      "https://example.com/dl?path=..%2F..%2F..",
			expected: DefaultFilename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilenameFromURL(tt.url, ""))
		})
	}
}

func TestFilenameFromURL_CustomBundleName(t *testing.T) {
	assert.Equal(t, "artifacts.zip", FilenameFromURL("https://x/download-files", "artifacts.zip"))
}

func TestFilenameFromDestination(t *testing.T) {
	assert.Equal(t, "a.txt", FilenameFromDestination("file:///home/u/Downloads/a.txt"))
	assert.Equal(t, "b.txt", FilenameFromDestination("/tmp/b.txt"))
	assert.Equal(t, DefaultFilename, FilenameFromDestination(""))
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"file.txt", "file", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
	}
	for _, tt := range tests {
		stem, ext := SplitExt(tt.in)
		assert.Equal(t, tt.stem, stem, tt.in)
		assert.Equal(t, tt.ext, ext, tt.in)
	}
}

func TestUniqueFilepath(t *testing.T) {
	dir := "/downloads"
	fixed := func() time.Time { return time.UnixMilli(1700000000123) }

	tests := []struct {
		name     string
		filename string
		existing map[string]bool
		expected string
	}{
		{
			name:     "no collision",
			filename: "file.txt",
			existing: map[string]bool{},
			expected: filepath.Join(dir, "file.txt"),
		},
		{
			name:     "one collision",
			filename: "file.txt",
			existing: map[string]bool{filepath.Join(dir, "file.txt"): true},
			expected: filepath.Join(dir, "file (1).txt"),
		},
		{
			name:     "two collisions",
			filename: "file.txt",
			existing: map[string]bool{
				filepath.Join(dir, "file.txt"):     true,
				filepath.Join(dir, "file (1).txt"): true,
			},
			expected: filepath.Join(dir, "file (2).txt"),
		},
		{
			name:     "no extension",
			filename: "README",
			existing: map[string]bool{filepath.Join(dir, "README"): true},
			expected: filepath.Join(dir, "README (1)"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists := func(path string) bool { return tt.existing[path] }
			assert.Equal(t, tt.expected, UniqueFilepath(dir, tt.filename, exists, fixed))
		})
	}
}

func TestUniqueFilepath_TimestampFallback(t *testing.T) {
	fixed := func() time.Time { return time.UnixMilli(1700000000123) }
	calls := 0
	alwaysExists := func(string) bool {
		calls++
		return true
	}

	got := UniqueFilepath("/d", "file.txt", alwaysExists, fixed)

	assert.Equal(t, filepath.Join("/d", "file_1700000000123.txt"), got)
	assert.Equal(t, MaxCollisionSuffix+1, calls, "search must stop at the bound")
}
