package ingestion

import (
	"regexp"
	"strings"
)

var (
	excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)
	repeatedSpaces      = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes extracted or pasted text: line endings become LF,
// trailing whitespace per line is dropped, runs of spaces collapse, and
// blank-line runs reduce to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = repeatedSpaces.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
