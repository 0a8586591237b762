// Package filter derives filtered views and aggregate summaries from
// a dataset snapshot. Everything here is a pure function: the same
// snapshot and parameters always yield the same result, and the
// snapshot is never mutated.
package filter

import (
	"sort"
	"time"

	"github.com/david/tender-board/internal/ingest"
	"github.com/david/tender-board/internal/models"
)

// AllCategories is the sentinel selector meaning "no category
// restriction".
const AllCategories = "All"

// Params are the filter inputs accepted at the boundary. Zero values
// fall back to the defaults: category "All", minimum date today.
type Params struct {
	Category string
	MinDate  time.Time
}

func (p Params) normalized(now time.Time) Params {
	if p.Category == "" {
		p.Category = AllCategories
	}
	if p.MinDate.IsZero() {
		p.MinDate = now
	}
	p.MinDate = dateOnly(p.MinDate)
	return p
}

// Result holds the filtered row and event views. Both are selected by
// the same predicate over the same index, so they always reference
// the same underlying records.
type Result struct {
	Rows   []models.Tender
	Events []models.CalendarEvent
}

// Apply filters rows and events in lockstep. A record passes iff the
// selector is "All" or is an exact member of its category pairs, and
// its deadline is on or after the minimum date. A selector that is
// neither "All" nor in the vocabulary yields an empty result, not the
// full set. Input order is preserved.
func Apply(ds *ingest.Dataset, p Params, now time.Time) Result {
	p = p.normalized(now)

	res := Result{
		Rows:   []models.Tender{},
		Events: []models.CalendarEvent{},
	}
	if p.Category != AllCategories && !inVocabulary(ds.Categories, p.Category) {
		return res
	}

	pass := func(row models.Tender) bool {
		if p.Category != AllCategories && !containsExact(row.CategoryPairs, p.Category) {
			return false
		}
		return !dateOnly(row.DeadlineAt).Before(p.MinDate)
	}

	for i, row := range ds.Rows {
		if pass(row) {
			res.Rows = append(res.Rows, row)
			res.Events = append(res.Events, ds.Events[i])
		}
	}
	return res
}

// inVocabulary checks membership in the sorted vocabulary.
func inVocabulary(vocab []string, selector string) bool {
	i := sort.SearchStrings(vocab, selector)
	return i < len(vocab) && vocab[i] == selector
}

// containsExact is exact string membership, not substring matching.
func containsExact(pairs []string, selector string) bool {
	for _, p := range pairs {
		if p == selector {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
