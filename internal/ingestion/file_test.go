package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFileType(t *testing.T) {
	supported := []string{"pdf"}

	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"Resume.PDF", true},
		{"archive.tar.pdf", true},
		{"resume.docx", false},
		{"resume", false},
		{"", false},
		{".pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidFileType(tt.filename, supported))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cover_letter.csv", SanitizeFilename("cover_letter.csv"))
	assert.Equal(t, "a_b_c_d", SanitizeFilename(`a<b>c|d`))
	assert.Equal(t, "path_to_file", SanitizeFilename("path/to\\file"))
}

func TestFormatTokenCount(t *testing.T) {
	assert.Equal(t, "999", FormatTokenCount(999))
	assert.Equal(t, "1.0K", FormatTokenCount(1000))
	assert.Equal(t, "12.3K", FormatTokenCount(12345))
	assert.Equal(t, "0", FormatTokenCount(0))
}

func TestTruncateForDisplay(t *testing.T) {
	assert.Equal(t, "short", TruncateForDisplay("short", 100))
	assert.Equal(t, "this is...", TruncateForDisplay("this is a long string", 10))
	assert.Len(t, TruncateForDisplay("this is a long string", 10), 10)
}
