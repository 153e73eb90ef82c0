package export

import (
	"fmt"
	"io"
	"strings"
)

// WriteDocument writes the letter as a markdown document: a title, a
// Personal Information section with one bold label per field, and a Cover
// Letter Content section with one paragraph per blank-line-delimited block.
func WriteDocument(w io.Writer, title string, fields []FieldValue, letter string) error {
	var sb strings.Builder

	sb.WriteString("# " + title + "\n\n")

	if len(fields) > 0 {
		sb.WriteString("## Personal Information\n\n")
		for _, f := range fields {
			sb.WriteString("**" + f.Label + ":** " + f.Value + "\n\n")
		}
	}

	sb.WriteString("## Cover Letter Content\n\n")
	for _, paragraph := range Paragraphs(letter) {
		sb.WriteString(paragraph + "\n\n")
	}

	if _, err := io.WriteString(w, strings.TrimRight(sb.String(), "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Paragraphs splits a letter into blank-line-delimited blocks, dropping
// empty blocks. Line breaks inside a block are preserved.
func Paragraphs(letter string) []string {
	var paragraphs []string
	for _, block := range strings.Split(letter, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}
