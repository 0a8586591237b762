package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// parseDeadline attempts to parse a free-form submission deadline.
// The source is UK procurement data, so ambiguous numeric dates are
// read day-first: "05/03/2026" is 5 March 2026. The result is
// truncated to a date (midnight UTC); admission and filtering are
// date-only comparisons.
func parseDeadline(text string) (time.Time, bool) {
	text = cleanDateString(text)
	if text == "" {
		return time.Time{}, false
	}

	// ISO formats first (most reliable)
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return toDateOnly(t), true
	}
	isoFormats := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, format := range isoFormats {
		if t, err := time.Parse(format, text); err == nil {
			return toDateOnly(t), true
		}
	}

	// Day-first numeric and month-name formats
	dayFirstFormats := []string{
		"02/01/2006",
		"2/1/2006",
		"02/01/2006 15:04",
		"02-01-2006",
		"2-1-2006",
		"02.01.2006",
		"2 January 2006",
		"02 January 2006",
		"2 Jan 2006",
		"02 Jan 2006",
		"2 January 2006 3:04 PM",
		"January 2, 2006",
		"Jan 2, 2006",
	}
	for _, format := range dayFirstFormats {
		if t, err := time.Parse(format, text); err == nil {
			return toDateOnly(t), true
		}
	}

	if t := parseDeadlineWithRegex(text); !t.IsZero() {
		return toDateOnly(t), true
	}

	return time.Time{}, false
}

// toDateOnly truncates to midnight UTC.
func toDateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	numericDateRegex = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](20\d{2})\b`)
	monthNameRegex   = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec),?\s+(20\d{2})\b`)
	monthFirstRegex  = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(20\d{2})\b`)
)

// parseDeadlineWithRegex extracts a date embedded in surrounding text,
// e.g. "by 17:00 on 05/03/2026". Numeric dates are read day-first; a
// month-first reading is only tried when the day-first one is invalid
// (day value > 12 in the second position cannot be a month).
func parseDeadlineWithRegex(text string) time.Time {
	if matches := numericDateRegex.FindStringSubmatch(text); len(matches) == 4 {
		dayFirst := fmt.Sprintf("%s/%s/%s", matches[1], matches[2], matches[3])
		if t, err := time.Parse("2/1/2006", dayFirst); err == nil {
			return t
		}
		swapped := fmt.Sprintf("%s/%s/%s", matches[2], matches[1], matches[3])
		if t, err := time.Parse("2/1/2006", swapped); err == nil {
			return t
		}
	}

	if matches := monthNameRegex.FindStringSubmatch(text); len(matches) == 4 {
		dateStr := fmt.Sprintf("%s %s %s", matches[1], matches[2], matches[3])
		for _, format := range []string{"2 January 2006", "2 Jan 2006"} {
			if t, err := time.Parse(format, dateStr); err == nil {
				return t
			}
		}
	}

	if matches := monthFirstRegex.FindStringSubmatch(text); len(matches) == 4 {
		dateStr := fmt.Sprintf("%s %s, %s", matches[1], matches[2], matches[3])
		for _, format := range []string{"January 2, 2006", "Jan 2, 2006"} {
			if t, err := time.Parse(format, dateStr); err == nil {
				return t
			}
		}
	}

	return time.Time{}
}

// cleanDateString strips common label prefixes and normalizes noon/
// midnight markers so the format list has a fighting chance.
func cleanDateString(s string) string {
	prefixes := []string{
		"Submission deadline:", "Closing date:", "Deadline:",
		"Due date:", "Expires:", "Ends:",
	}
	sLower := strings.ToLower(s)
	for _, p := range prefixes {
		if idx := strings.Index(sLower, strings.ToLower(p)); idx != -1 {
			s = s[idx+len(p):]
			sLower = sLower[idx+len(p):]
		}
	}
	s = strings.ReplaceAll(s, "a.m.", "AM")
	s = strings.ReplaceAll(s, "p.m.", "PM")
	s = strings.ReplaceAll(s, " am", " AM")
	s = strings.ReplaceAll(s, " pm", " PM")
	return strings.TrimSpace(s)
}
