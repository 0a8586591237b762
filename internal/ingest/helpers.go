package ingest

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; tender text fields come from scraped
// pages and occasionally carry markup fragments.
var strictPolicy = bluemonday.StrictPolicy()

// normalizeSpace collapses runs of whitespace and trims the string.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanText strips markup and normalizes whitespace.
func cleanText(s string) string {
	if strings.ContainsAny(s, "<&") {
		s = html.UnescapeString(strictPolicy.Sanitize(s))
	}
	return normalizeSpace(s)
}

// textOrDefault returns the cleaned text, or fallback when empty.
func textOrDefault(s, fallback string) string {
	if cleaned := cleanText(s); cleaned != "" {
		return cleaned
	}
	return fallback
}

// TruncateTitle caps a display title at maxLen characters, appending
// an ellipsis when truncated.
func TruncateTitle(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

// truncateID cuts a string to max length with no ellipsis.
func truncateID(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen]
}
