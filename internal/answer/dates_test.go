package answer

import (
	"testing"
	"time"
)

// TestExtractDateISO verifies ISO date extraction.
func TestExtractDateISO(t *testing.T) {
	date, ok := ExtractDate("The event ran on 2024-03-01 in Berlin.")
	if !ok {
		t.Fatalf("expected a date")
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("got %v, want %v", date, want)
	}
}

// TestExtractDateUS verifies MM/DD/YYYY extraction.
func TestExtractDateUS(t *testing.T) {
	date, ok := ExtractDate("Due 3/14/2023.")
	if !ok {
		t.Fatalf("expected a date")
	}
	want := time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("got %v, want %v", date, want)
	}
}

// TestExtractDateLongForm verifies "D Month YYYY" extraction.
func TestExtractDateLongForm(t *testing.T) {
	date, ok := ExtractDate("Signed on 5 august 2022 by both parties.")
	if !ok {
		t.Fatalf("expected a date")
	}
	want := time.Date(2022, time.August, 5, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("got %v, want %v", date, want)
	}
}

// TestExtractDateRejectsInvalid verifies impossible dates and plain text
// report ok=false.
func TestExtractDateRejectsInvalid(t *testing.T) {
	for _, input := range []string{"no date here", "2024-13-40 is not a date", "99/99/2024"} {
		if _, ok := ExtractDate(input); ok {
			t.Fatalf("ExtractDate(%q) unexpectedly matched", input)
		}
	}
}
