package filter

import (
	"sort"
	"time"

	"github.com/david/tender-board/internal/models"
)

// Aggregation is one bucket of a grouped count.
type Aggregation struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Urgency bracket labels, in ascending order of their day bound. The
// first bracket whose bound the days-left value satisfies wins, so
// negative values (deadline passed since load) land in Critical.
var urgencyBrackets = []struct {
	Label   string
	MaxDays int
}{
	{"Critical", 3},
	{"Urgent", 7},
	{"Soon", 14},
	{"Normal", 30},
}

const futureLabel = "Future"

// UrgencyLabels lists every bracket label in display order.
func UrgencyLabels() []string {
	labels := make([]string, 0, len(urgencyBrackets)+1)
	for _, b := range urgencyBrackets {
		labels = append(labels, b.Label)
	}
	return append(labels, futureLabel)
}

// PriorityFor maps a days-left value to its urgency bracket.
func PriorityFor(daysLeft int) string {
	for _, b := range urgencyBrackets {
		if daysLeft <= b.MaxDays {
			return b.Label
		}
	}
	return futureLabel
}

// DaysLeft is the whole-day distance from now to the deadline,
// date-only on both sides. It goes negative once now passes a
// deadline that was still admissible at load time.
func DaysLeft(deadline, now time.Time) int {
	return int(dateOnly(deadline).Sub(dateOnly(now)).Hours() / 24)
}

// Decorate returns a copy of the rows with the per-query derived
// fields filled in: DaysLeft, PriorityLabel and LocationTenderCount.
// The input slice is left untouched; the published snapshot must
// never be written to.
func Decorate(rows []models.Tender, now time.Time) []models.Tender {
	counts := LocationCounts(rows)
	out := make([]models.Tender, len(rows))
	for i, row := range rows {
		row.DaysLeft = DaysLeft(row.DeadlineAt, now)
		row.PriorityLabel = PriorityFor(row.DaysLeft)
		row.LocationTenderCount = counts[row.ContractLocation]
		out[i] = row
	}
	return out
}

// LocationCounts groups rows by contract location.
func LocationCounts(rows []models.Tender) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ContractLocation]++
	}
	return counts
}

// TopLocations ranks locations by tender count, descending, ties
// broken alphabetically for a stable summary list.
func TopLocations(rows []models.Tender, limit int) []Aggregation {
	counts := LocationCounts(rows)
	out := make([]Aggregation, 0, len(counts))
	for loc, n := range counts {
		out = append(out, Aggregation{Value: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MonthlyCounts buckets rows by deadline month within the six-month
// window starting today. Keys are "2006-01".
func MonthlyCounts(rows []models.Tender, today time.Time) map[string]int {
	start := dateOnly(today)
	end := start.AddDate(0, 6, 0)
	counts := make(map[string]int)
	for _, row := range rows {
		d := dateOnly(row.DeadlineAt)
		if d.Before(start) || d.After(end) {
			continue
		}
		counts[d.Format("2006-01")]++
	}
	return counts
}

// DailyCounts buckets rows by exact deadline day. Keys are
// "2006-01-02".
func DailyCounts(rows []models.Tender) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[dateOnly(row.DeadlineAt).Format("2006-01-02")]++
	}
	return counts
}

// UrgencyCounts partitions rows into the five urgency brackets. Every
// row lands in exactly one bucket; all labels are present even when
// zero.
func UrgencyCounts(rows []models.Tender, now time.Time) map[string]int {
	counts := make(map[string]int, len(urgencyBrackets)+1)
	for _, label := range UrgencyLabels() {
		counts[label] = 0
	}
	for _, row := range rows {
		counts[PriorityFor(DaysLeft(row.DeadlineAt, now))]++
	}
	return counts
}

// EventsOn narrows events to one exact calendar day ("2006-01-02").
func EventsOn(events []models.CalendarEvent, date string) []models.CalendarEvent {
	out := []models.CalendarEvent{}
	for _, ev := range events {
		if ev.Start == date {
			out = append(out, ev)
		}
	}
	return out
}

// Summary is the headline card data for a filtered result.
type Summary struct {
	FilteredCount   int    `json:"filtered_count"`
	NearestDeadline string `json:"nearest_deadline"`
	UrgentCount     int    `json:"urgent_count"`
	CategoryCount   int    `json:"category_count"`
}

// Stats computes the headline summary. UrgentCount uses the same
// seven-day window as event coloring.
func Stats(rows []models.Tender, categoryCount int, now time.Time) Summary {
	s := Summary{
		FilteredCount:   len(rows),
		NearestDeadline: "N/A",
		CategoryCount:   categoryCount,
	}
	cutoff := dateOnly(now).AddDate(0, 0, 7)
	var nearest time.Time
	for _, row := range rows {
		if nearest.IsZero() || row.DeadlineAt.Before(nearest) {
			nearest = row.DeadlineAt
		}
		if !dateOnly(row.DeadlineAt).After(cutoff) {
			s.UrgentCount++
		}
	}
	if !nearest.IsZero() {
		s.NearestDeadline = nearest.Format(models.DeadlineDisplayFormat)
	}
	return s
}
