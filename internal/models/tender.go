package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeadlineDisplayFormat is the human-readable deadline format used in
// table output and event properties, e.g. "05 Mar 2026".
const DeadlineDisplayFormat = "02 Jan 2006"

// EventDateFormat is the calendar wire format for event start/end dates.
const EventDateFormat = "2006-01-02"

// Tender is the canonical, admission-filtered representation of one
// procurement tender. Rows are immutable once built; DaysLeft,
// PriorityLabel and LocationTenderCount are derived per query by the
// filter layer onto copies, never onto the published dataset.
type Tender struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	DeadlineAt          time.Time `json:"deadline_at"`
	DeadlineStr         string    `json:"deadline_str"`
	Organisation        string    `json:"organisation"`
	CategoryPairs       []string  `json:"category_pairs"`
	CombinedCategories  string    `json:"combined_categories"`
	Link                string    `json:"link"`
	ContractLocation    string    `json:"contract_location"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	DaysLeft            int       `json:"days_left"`
	PriorityLabel       string    `json:"priority_label"`
	LocationTenderCount int       `json:"location_tender_count"`
}

// HasUsableLink reports whether the tender link can be shown as a
// hyperlink. Sources emit placeholders like "#" for missing links.
func (t Tender) HasUsableLink() bool {
	return strings.HasPrefix(t.Link, "http")
}

// HasCoordinates reports whether the contract location resolved
// against the region table. Rows without coordinates stay in tabular
// output but are excluded from map aggregation.
func (t Tender) HasCoordinates() bool {
	return t.Latitude != nil && t.Longitude != nil
}

// EventProps carries the tender metadata attached to a calendar event.
// TenderID and CombinedCategories are only populated when rich event
// properties are enabled.
type EventProps struct {
	Organisation       string   `json:"organisation"`
	ContractLocation   string   `json:"contract_location"`
	CategoryPairs      []string `json:"category_pairs"`
	DeadlineStr        string   `json:"deadline_str"`
	Link               string   `json:"tender_link,omitempty"`
	FullTitle          string   `json:"full_title"`
	TenderID           string   `json:"tender_id,omitempty"`
	CombinedCategories string   `json:"cpv_codes,omitempty"`
}

// CalendarEvent is derived 1:1 with a Tender; both carry the same ID.
// Start and End are equal date-only strings. The urgent/normal split
// is part of the core contract; the color pairs are the values the
// calendar widget consumes.
type CalendarEvent struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Start           string     `json:"start"`
	End             string     `json:"end"`
	Urgent          bool       `json:"urgent"`
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor"`
	Props           EventProps `json:"extendedProps"`
}
