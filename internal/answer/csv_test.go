package answer

import (
	"reflect"
	"testing"
)

// TestExtractCSVRows verifies row detection, trimming, and lead-in skipping.
func TestExtractCSVRows(t *testing.T) {
	text := "The matching rows are:\n1, Alice, 120\n2, Bob, 110\nplain prose line\n"
	got := ExtractCSVRows(text)
	want := [][]string{
		{"1", "Alice", "120"},
		{"2", "Bob", "110"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractCSVRows = %v, want %v", got, want)
	}
}

// TestExtractCSVRowsEmpty verifies prose without rows yields nothing.
func TestExtractCSVRowsEmpty(t *testing.T) {
	if rows := ExtractCSVRows("No tabular data at all."); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}
