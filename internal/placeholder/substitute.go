package placeholder

import "strings"

// Substitute replaces every literal occurrence of [label] in text with the
// mapped value, for each label in values. Replacement is exact-string and
// single-pass: a value that itself contains a bracketed label is never
// re-scanned, and regex metacharacters in labels need no escaping.
func Substitute(text string, values map[string]string) string {
	if len(values) == 0 {
		return text
	}
	pairs := make([]string, 0, len(values)*2)
	for label, value := range values {
		pairs = append(pairs, "["+label+"]", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// ValidateRequired checks that every required label has a non-empty value
// after trimming. It returns whether all are filled and the labels of the
// empty fields in input order.
func ValidateRequired(values map[string]string, required []string) (bool, []string) {
	var empty []string
	for _, label := range required {
		if strings.TrimSpace(values[label]) == "" {
			empty = append(empty, label)
		}
	}
	return len(empty) == 0, empty
}
