package ingest

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDeadline_DayFirst(t *testing.T) {
	cases := map[string]time.Time{
		"05/03/2026":       date(2026, time.March, 5),
		"5/3/2026":         date(2026, time.March, 5),
		"31/01/2026":       date(2026, time.January, 31),
		"05-03-2026":       date(2026, time.March, 5),
		"05.03.2026":       date(2026, time.March, 5),
		"5 March 2026":     date(2026, time.March, 5),
		"05 Mar 2026":      date(2026, time.March, 5),
		"March 5, 2026":    date(2026, time.March, 5),
		"2026-03-05":       date(2026, time.March, 5),
		"2026-03-05T12:30:00Z": date(2026, time.March, 5),
	}
	for input, want := range cases {
		got, ok := parseDeadline(input)
		if !ok {
			t.Fatalf("parseDeadline(%q): expected success", input)
		}
		if !got.Equal(want) {
			t.Fatalf("parseDeadline(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDeadline_EmbeddedInText(t *testing.T) {
	got, ok := parseDeadline("Submission deadline: by 17:00 on 05/03/2026")
	if !ok {
		t.Fatal("expected success for embedded date")
	}
	if want := date(2026, time.March, 5); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDeadline_MonthFirstFallback(t *testing.T) {
	// Day-first reading of 03/15 would be month 15; the swap rescues it.
	got, ok := parseDeadline("03/15/2026")
	if !ok {
		t.Fatal("expected swap fallback to succeed")
	}
	if want := date(2026, time.March, 15); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDeadline_Unparseable(t *testing.T) {
	for _, input := range []string{"", "soon", "TBC", "13/13/2026", "32/01/2026"} {
		if _, ok := parseDeadline(input); ok {
			t.Fatalf("parseDeadline(%q): expected failure", input)
		}
	}
}

func TestParseDeadline_DateOnly(t *testing.T) {
	got, ok := parseDeadline("2026-03-05 14:00:00")
	if !ok {
		t.Fatal("expected success")
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected time truncated to midnight, got %v", got)
	}
}
