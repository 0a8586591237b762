package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/david/tender-board/internal/geo"
	"github.com/david/tender-board/internal/models"
)

// Event color pairs. Urgent deadlines get the red pairing, everything
// else the blue one; the two-state split is the contract, the hex
// values are what the calendar widget consumes.
const (
	urgentBackground = "#e74c3c"
	urgentBorder     = "#c0392b"
	normalBackground = "#3498db"
	normalBorder     = "#2980b9"
)

// FromRaw normalizes one raw tender into a canonical row and its
// calendar event. The single admission rule: the submission deadline
// must be present, parseable day-first, and on or after today
// (date-only; a deadline equal to today is kept). Dropped records
// return ok=false; that is a per-record condition, never an error.
func FromRaw(raw RawTender, today time.Time, opts Options) (models.Tender, models.CalendarEvent, bool) {
	opts = opts.withDefaults()
	today = toDateOnly(today)

	deadline, ok := parseDeadline(raw.Details[detailDeadline])
	if !ok || deadline.Before(today) {
		return models.Tender{}, models.CalendarEvent{}, false
	}

	title := textOrDefault(raw.Title, "Untitled")
	organisation := textOrDefault(raw.Organisation, "Unknown")
	location := raw.Details[detailLocation]
	if location == "" {
		location = "Unknown"
	}

	pairs := categoryPairs(raw.CPVCodes, raw.CPVDescriptions)
	combined := strings.Join(pairs, ", ")
	deadlineStr := deadline.Format(models.DeadlineDisplayFormat)

	row := models.Tender{
		ID:                 uuid.New(),
		Title:              title,
		DeadlineAt:         deadline,
		DeadlineStr:        deadlineStr,
		Organisation:       organisation,
		CategoryPairs:      pairs,
		CombinedCategories: combined,
		Link:               strings.TrimSpace(raw.Link),
		ContractLocation:   location,
	}
	if coords, found := geo.Lookup(location); found {
		lat, lon := coords.Lat, coords.Lon
		row.Latitude = &lat
		row.Longitude = &lon
	}

	urgent := !deadline.After(today.AddDate(0, 0, opts.UrgentWindowDays))
	eventDate := deadline.Format(models.EventDateFormat)
	event := models.CalendarEvent{
		ID:     row.ID,
		Title:  TruncateTitle(title, opts.TitleDisplayLimit),
		Start:  eventDate,
		End:    eventDate,
		Urgent: urgent,
		Props: models.EventProps{
			Organisation:     organisation,
			ContractLocation: location,
			CategoryPairs:    pairs,
			DeadlineStr:      deadlineStr,
			Link:             row.Link,
			FullTitle:        title,
		},
	}
	if urgent {
		event.BackgroundColor = urgentBackground
		event.BorderColor = urgentBorder
	} else {
		event.BackgroundColor = normalBackground
		event.BorderColor = normalBorder
	}
	if opts.RichEventProps {
		event.Props.TenderID = truncateID(title, 50)
		event.Props.CombinedCategories = combined
	}

	return row, event, true
}

// categoryPairs pairs codes and descriptions positionally up to the
// shorter list. Duplicate pairs within one record are kept as-is.
func categoryPairs(codes, descriptions []string) []string {
	n := len(codes)
	if len(descriptions) < n {
		n = len(descriptions)
	}
	pairs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, fmt.Sprintf("%s - %s", codes[i], descriptions[i]))
	}
	return pairs
}
