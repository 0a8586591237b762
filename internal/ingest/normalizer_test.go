package ingest

import (
	"strings"
	"testing"
	"time"
)

func rawTender(deadline string) RawTender {
	return RawTender{
		Title:           "Construction of a new primary school",
		Organisation:    "London Borough of Camden",
		Link:            "https://www.example.gov.uk/notice/123",
		CPVCodes:        []string{"45000000"},
		CPVDescriptions: []string{"Construction work"},
		Details: map[string]string{
			detailDeadline: deadline,
			detailLocation: "UKI3 - Inner London",
		},
	}
}

var testToday = date(2026, time.January, 15)

func TestFromRaw_AdmittedRecord(t *testing.T) {
	row, event, ok := FromRaw(rawTender("05/03/2026"), testToday, Options{})
	if !ok {
		t.Fatal("expected admission")
	}

	if want := date(2026, time.March, 5); !row.DeadlineAt.Equal(want) {
		t.Fatalf("deadline = %v, want %v", row.DeadlineAt, want)
	}
	if row.DeadlineStr != "05 Mar 2026" {
		t.Fatalf("deadline_str = %q", row.DeadlineStr)
	}
	if len(row.CategoryPairs) != 1 || row.CategoryPairs[0] != "45000000 - Construction work" {
		t.Fatalf("category pairs = %v", row.CategoryPairs)
	}
	if row.CombinedCategories != "45000000 - Construction work" {
		t.Fatalf("combined = %q", row.CombinedCategories)
	}
	if !row.HasCoordinates() {
		t.Fatal("expected Inner London coordinates")
	}
	if *row.Latitude != 51.5074 || *row.Longitude != -0.1278 {
		t.Fatalf("coordinates = %v, %v", *row.Latitude, *row.Longitude)
	}
	if !row.HasUsableLink() {
		t.Fatal("expected usable link")
	}

	if event.ID != row.ID {
		t.Fatal("row and event must share an ID")
	}
	if event.Start != "2026-03-05" || event.End != "2026-03-05" {
		t.Fatalf("event dates = %s / %s", event.Start, event.End)
	}
	if event.Urgent {
		t.Fatal("deadline beyond 7 days must not be urgent")
	}
	if event.BackgroundColor != "#3498db" || event.BorderColor != "#2980b9" {
		t.Fatalf("normal colors = %s / %s", event.BackgroundColor, event.BorderColor)
	}
}

func TestFromRaw_AdmissionRules(t *testing.T) {
	cases := []struct {
		name     string
		deadline string
		admit    bool
	}{
		{"past deadline dropped", "14/01/2026", false},
		{"deadline equal to today kept", "15/01/2026", true},
		{"future deadline kept", "16/01/2026", true},
		{"missing deadline dropped", "", false},
		{"unparseable deadline dropped", "as soon as possible", false},
	}
	for _, tc := range cases {
		raw := rawTender(tc.deadline)
		if tc.deadline == "" {
			delete(raw.Details, detailDeadline)
		}
		if _, _, ok := FromRaw(raw, testToday, Options{}); ok != tc.admit {
			t.Fatalf("%s: admitted=%v, want %v", tc.name, ok, tc.admit)
		}
	}
}

func TestFromRaw_TodayTimeOfDayIgnored(t *testing.T) {
	// Admission is a date-only comparison even when today carries a
	// time-of-day component.
	today := time.Date(2026, time.January, 15, 23, 45, 0, 0, time.UTC)
	if _, _, ok := FromRaw(rawTender("15/01/2026"), today, Options{}); !ok {
		t.Fatal("deadline equal to today must be kept")
	}
}

func TestFromRaw_Defaults(t *testing.T) {
	raw := RawTender{
		Details: map[string]string{detailDeadline: "05/03/2026"},
	}
	row, event, ok := FromRaw(raw, testToday, Options{})
	if !ok {
		t.Fatal("expected admission")
	}
	if row.Title != "Untitled" {
		t.Fatalf("title = %q", row.Title)
	}
	if row.Organisation != "Unknown" {
		t.Fatalf("organisation = %q", row.Organisation)
	}
	if row.ContractLocation != "Unknown" {
		t.Fatalf("location = %q", row.ContractLocation)
	}
	if row.HasCoordinates() {
		t.Fatal("Unknown location must not resolve coordinates")
	}
	if len(row.CategoryPairs) != 0 {
		t.Fatalf("category pairs = %v", row.CategoryPairs)
	}
	if row.HasUsableLink() {
		t.Fatal("empty link must not be usable")
	}
	if event.Props.Organisation != "Unknown" {
		t.Fatalf("event organisation = %q", event.Props.Organisation)
	}
}

func TestFromRaw_PlaceholderLink(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.Link = "#"
	row, _, _ := FromRaw(raw, testToday, Options{})
	if row.HasUsableLink() {
		t.Fatal("placeholder link must not be usable")
	}
}

func TestFromRaw_UrgentEvent(t *testing.T) {
	row, event, ok := FromRaw(rawTender("20/01/2026"), testToday, Options{})
	if !ok {
		t.Fatal("expected admission")
	}
	if !event.Urgent {
		t.Fatalf("deadline %v within 7 days of %v must be urgent", row.DeadlineAt, testToday)
	}
	if event.BackgroundColor != "#e74c3c" || event.BorderColor != "#c0392b" {
		t.Fatalf("urgent colors = %s / %s", event.BackgroundColor, event.BorderColor)
	}

	// Boundary: exactly today+7 is still urgent, today+8 is not.
	_, boundary, _ := FromRaw(rawTender("22/01/2026"), testToday, Options{})
	if !boundary.Urgent {
		t.Fatal("today+7 must be urgent")
	}
	_, beyond, _ := FromRaw(rawTender("23/01/2026"), testToday, Options{})
	if beyond.Urgent {
		t.Fatal("today+8 must not be urgent")
	}
}

func TestFromRaw_TitleTruncation(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.Title = strings.Repeat("x", 100)
	row, event, _ := FromRaw(raw, testToday, Options{})

	if len(row.Title) != 100 {
		t.Fatalf("row title must keep full length, got %d", len(row.Title))
	}
	if event.Props.FullTitle != row.Title {
		t.Fatal("event full title must match row title")
	}
	want := strings.Repeat("x", 80) + "..."
	if event.Title != want {
		t.Fatalf("event title = %q", event.Title)
	}

	// At exactly the limit nothing is appended.
	raw.Title = strings.Repeat("x", 80)
	_, event, _ = FromRaw(raw, testToday, Options{})
	if event.Title != raw.Title {
		t.Fatalf("80-char title must stay untouched, got %q", event.Title)
	}
}

func TestFromRaw_CategoryPairing(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.CPVCodes = []string{"45000000", "71000000", "90000000"}
	raw.CPVDescriptions = []string{"Construction work", "Architectural services"}
	row, _, _ := FromRaw(raw, testToday, Options{})

	// Pairing stops at the shorter list.
	if len(row.CategoryPairs) != 2 {
		t.Fatalf("expected 2 pairs, got %v", row.CategoryPairs)
	}
	if row.CategoryPairs[1] != "71000000 - Architectural services" {
		t.Fatalf("pair[1] = %q", row.CategoryPairs[1])
	}
	if row.CombinedCategories != "45000000 - Construction work, 71000000 - Architectural services" {
		t.Fatalf("combined = %q", row.CombinedCategories)
	}
}

func TestFromRaw_DuplicateCategoryPairKept(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.CPVCodes = []string{"45000000", "45000000"}
	raw.CPVDescriptions = []string{"Construction work", "Construction work"}
	row, _, _ := FromRaw(raw, testToday, Options{})
	if len(row.CategoryPairs) != 2 {
		t.Fatalf("duplicate pairs must be kept, got %v", row.CategoryPairs)
	}
}

func TestFromRaw_MarkupStripped(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.Title = "<b>School &amp; nursery</b>  refurbishment"
	row, _, _ := FromRaw(raw, testToday, Options{})
	if row.Title != "School & nursery refurbishment" {
		t.Fatalf("title = %q", row.Title)
	}
}

func TestFromRaw_RichEventProps(t *testing.T) {
	raw := rawTender("05/03/2026")
	raw.Title = strings.Repeat("t", 60)

	_, plain, _ := FromRaw(raw, testToday, Options{})
	if plain.Props.TenderID != "" || plain.Props.CombinedCategories != "" {
		t.Fatal("rich props must be empty when disabled")
	}

	_, rich, _ := FromRaw(raw, testToday, Options{RichEventProps: true})
	if rich.Props.TenderID != strings.Repeat("t", 50) {
		t.Fatalf("tender_id = %q", rich.Props.TenderID)
	}
	if rich.Props.CombinedCategories != "45000000 - Construction work" {
		t.Fatalf("combined categories = %q", rich.Props.CombinedCategories)
	}
}

func TestFromRaw_UrgentWindowOption(t *testing.T) {
	// 2026-01-29 is 14 days out: not urgent by default, urgent with a
	// wider window.
	_, event, _ := FromRaw(rawTender("29/01/2026"), testToday, Options{})
	if event.Urgent {
		t.Fatal("14 days out must not be urgent with the default window")
	}
	_, event, _ = FromRaw(rawTender("29/01/2026"), testToday, Options{UrgentWindowDays: 14})
	if !event.Urgent {
		t.Fatal("14 days out must be urgent with a 14-day window")
	}
}
