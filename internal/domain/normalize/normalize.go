// Package normalize prepares raw item text for scoring and matching.
package normalize

import "strings"

// Text lower-cases s and collapses runs of whitespace into single spaces.
// Empty input normalizes to the empty string; it never fails.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Join concatenates an optional title with body text and normalizes the
// result. The title contributes evidence the same way body text does.
func Join(title, text string) string {
	if title == "" {
		return Text(text)
	}
	return Text(title + " " + text)
}
