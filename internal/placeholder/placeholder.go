// Package placeholder extracts, classifies, and substitutes bracketed
// placeholders in generated cover letters.
package placeholder

import (
	"regexp"
	"strings"
	"time"
)

// Category is the semantic type of a placeholder, used by the rendering layer
// to pick an input widget.
type Category string

// Placeholder categories.
const (
	CategoryEmail   Category = "email"
	CategoryPhone   Category = "phone"
	CategoryAddress Category = "address"
	CategoryDate    Category = "date"
	CategoryName    Category = "name"
	CategoryGeneric Category = "generic"
)

// DateFormat is how date placeholders are pre-filled at render time.
const DateFormat = "January 2, 2006"

// pattern matches a bracket-delimited span with no nested brackets.
var pattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// categoryKeywords is the classification table. Order is significant and
// fixed: the first group containing a matching keyword wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryEmail, []string{"email", "mail"}},
	{CategoryPhone, []string{"phone", "mobile", "tel"}},
	{CategoryAddress, []string{"address", "street"}},
	{CategoryDate, []string{"date"}},
	{CategoryName, []string{"name"}},
}

// categoryDefaults holds one static example value per category.
var categoryDefaults = map[Category]string{
	CategoryEmail:   "example@email.com",
	CategoryPhone:   "(123) 456-7890",
	CategoryAddress: "123 Main Street",
	CategoryName:    "John Doe",
	CategoryGeneric: "Enter value",
}

// Field is a declarative record describing one personalization input.
// The rendering layer maps Category to a widget kind; the engine itself is
// pure data.
type Field struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Default  string   `json:"default"`
	ReadOnly bool     `json:"read_only"`
}

// Extract returns the unique placeholder labels in text, verbatim, in order
// of first appearance. Duplicate occurrences collapse to one entry.
func Extract(text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]bool, len(matches))
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		label := m[1]
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// Classify returns the semantic category for a label. Matching is
// case-insensitive substring membership against the keyword table; labels
// matching no group are generic.
func Classify(label string) Category {
	lower := strings.ToLower(label)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.category
			}
		}
	}
	return CategoryGeneric
}

// DefaultFor returns the static example value for a label's category.
// Date placeholders have no static default; use BuildFields for those.
func DefaultFor(label string) string {
	if v, ok := categoryDefaults[Classify(label)]; ok {
		return v
	}
	return categoryDefaults[CategoryGeneric]
}

// BuildFields extracts the placeholders in text and returns one Field per
// unique label. Date fields are pre-filled with now and marked read-only; all
// other categories carry their static example value and are editable.
func BuildFields(text string, now time.Time) []Field {
	labels := Extract(text)
	fields := make([]Field, 0, len(labels))
	for _, label := range labels {
		category := Classify(label)
		f := Field{Label: label, Category: category}
		if category == CategoryDate {
			f.Default = now.Format(DateFormat)
			f.ReadOnly = true
		} else {
			f.Default = DefaultFor(label)
		}
		fields = append(fields, f)
	}
	return fields
}
