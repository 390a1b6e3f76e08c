package answer

import (
	"math"
	"testing"
)

// TestNormalizeNumber verifies number extraction from prose and formatting.
func TestNormalizeNumber(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"approximately 42 events", 42},
		{"$1,234.56", 1234.56},
		{"-3.5 degrees", -3.5},
		{"2,810", 2810},
		{"revenue was €12,000 last year", 12000},
	}
	for _, c := range cases {
		got, ok := NormalizeNumber(c.input)
		if !ok {
			t.Fatalf("NormalizeNumber(%q) found nothing", c.input)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("NormalizeNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// TestNormalizeNumberMissing verifies that text without numbers reports ok=false.
func TestNormalizeNumberMissing(t *testing.T) {
	for _, input := range []string{"", "no numbers here", "$,"} {
		if _, ok := NormalizeNumber(input); ok {
			t.Fatalf("NormalizeNumber(%q) unexpectedly found a number", input)
		}
	}
}

// TestNormalizeString verifies lowering, punctuation stripping, and
// whitespace collapsing.
func TestNormalizeString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"  Alice Johnson ", "alice johnson"},
		{"Hello,   World!", "hello world"},
		{`"It's fine."`, "its fine"},
		{"A\tB\nC", "a b c"},
	}
	for _, c := range cases {
		if got := NormalizeString(c.input); got != c.want {
			t.Fatalf("NormalizeString(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// TestNormalizeStringIdempotent verifies normalization is stable under
// repeated application.
func TestNormalizeStringIdempotent(t *testing.T) {
	inputs := []string{"  Alice, Bob; Carol!  ", "MIXED case TEXT", "already normalized"}
	for _, input := range inputs {
		once := NormalizeString(input)
		twice := NormalizeString(once)
		if once != twice {
			t.Fatalf("NormalizeString not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

// TestCollapseThousands verifies separator collapsing leaves list commas alone.
func TestCollapseThousands(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2,810", "2810"},
		{"1,234,567", "1234567"},
		{"Alice, Bob", "Alice, Bob"},
		{"12, 13", "12, 13"},
	}
	for _, c := range cases {
		if got := CollapseThousands(c.input); got != c.want {
			t.Fatalf("CollapseThousands(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
