// Package export serializes a personalized cover letter plus its field values
// into downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// FieldValue is one personalization field and the value the user supplied.
// Exports preserve the order fields were presented in.
type FieldValue struct {
	Label string
	Value string
}

// WriteCSV writes the personalization fields and letter as CSV: a
// `Field,Value` header, one row per field, a blank separator row, a
// `Cover Letter Content` header row, then one row per non-blank letter line.
func WriteCSV(w io.Writer, fields []FieldValue, letter string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Field", "Value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, f := range fields {
		if err := cw.Write([]string{"Personal Info - " + f.Label, f.Value}); err != nil {
			return fmt.Errorf("failed to write field row: %w", err)
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write separator row: %w", err)
	}
	if err := cw.Write([]string{"Cover Letter Content"}); err != nil {
		return fmt.Errorf("failed to write content header: %w", err)
	}

	for _, line := range strings.Split(letter, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := cw.Write([]string{line}); err != nil {
			return fmt.Errorf("failed to write letter line: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
