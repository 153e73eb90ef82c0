// Package ingestion turns uploaded resumes and pasted job descriptions into
// clean plain text.
package ingestion

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError indicates the PDF could not be parsed or yielded no text.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from PDF: %v", e.Cause)
	}
	return "no text could be extracted from PDF"
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// ExtractPDFText extracts plain text from a PDF byte stream: per-page text
// joined by newlines, trailing whitespace trimmed. A parse failure or an
// empty extraction is an ExtractionError, never a crash.
func ExtractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", &ExtractionError{Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page doesn't fail the whole document.
			continue
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ExtractionError{}
	}

	return text, nil
}
