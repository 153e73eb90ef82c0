package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
)

// unsafeFilenameChars are replaced before a name is used in a download header
// or on disk.
const unsafeFilenameChars = `<>:"/\|?*`

// ValidFileType reports whether filename has one of the supported extensions
// (compared case-insensitively, without the leading dot).
func ValidFileType(filename string, supported []string) bool {
	if filename == "" {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	for _, s := range supported {
		if ext == strings.ToLower(s) {
			return true
		}
	}
	return false
}

// SanitizeFilename replaces characters that are unsafe in filenames with
// underscores.
func SanitizeFilename(filename string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeFilenameChars, r) {
			return '_'
		}
		return r
	}, filename)
}

// FormatTokenCount renders a token count for display, e.g. 12345 -> "12.3K".
func FormatTokenCount(count int) string {
	if count >= 1000 {
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}

// TruncateForDisplay shortens text to maxLen characters with an ellipsis.
func TruncateForDisplay(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}
