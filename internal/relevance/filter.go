// Package relevance filters numeric candidates extracted from model answers
// using question-context heuristics. Model answers interleave the target
// number with incidental numbers (dates, ranks, IDs), so naive first-number
// extraction is unreliable; the heuristics trade recall for precision.
package relevance

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"taktmate/internal/answer"
)

// Heuristic ranges for classifying numbers. Values outside these ranges are
// knowingly misclassified (a legitimate day count of 1500 is dropped); the
// limits are kept as-is for result compatibility.
const (
	// DayRangeMax bounds plausible day-count answers (exclusive).
	DayRangeMax = 1000
	// CountMax bounds plausible counting-question answers (inclusive).
	CountMax = 1000
	// YearMin and YearMax bracket 4-digit integers that read as years.
	YearMin = 1900
	YearMax = 2100
)

var (
	signedNumberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	monthNames     = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec`
	isoShapeRe     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	usShapeRe      = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
)

// ExtractNumbers returns every signed decimal number in text, collapsing
// thousands separators first so "2,810" reads as one number.
func ExtractNumbers(text string) []float64 {
	collapsed := answer.CollapseThousands(text)
	matches := signedNumberRe.FindAllString(collapsed, -1)
	numbers := make([]float64, 0, len(matches))
	for _, match := range matches {
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, parsed)
	}
	return numbers
}

// IsPartOfDate reports whether a number reads as a date component in the
// source text: a 4-digit year-like integer, a component of an ISO or US
// date shape, or an integer adjacent to a month name.
func IsPartOfDate(number float64, text string) bool {
	if number != math.Trunc(number) {
		return false
	}
	if isYearLike(number) {
		return true
	}
	value := int(number)
	digits := strconv.Itoa(value)
	for _, shape := range isoShapeRe.FindAllString(text, -1) {
		if dateShapeContains(shape, "-", value) {
			return true
		}
	}
	for _, shape := range usShapeRe.FindAllString(answer.CollapseThousands(text), -1) {
		if dateShapeContains(shape, "/", value) {
			return true
		}
	}
	nearMonth := regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+` + digits + `\b|\b` + digits + `(?:st|nd|rd|th)?\s+(?:` + monthNames + `)\b`)
	return nearMonth.MatchString(text)
}

// ExtractNumbersWithContext finds numbers explicitly labelled with one of
// the context words, matching "<number> <word>" and "<word>: <number>".
// Results are deduplicated in first-seen order.
func ExtractNumbersWithContext(text string, contextWords []string) []float64 {
	collapsed := answer.CollapseThousands(text)
	seen := map[float64]struct{}{}
	var numbers []float64
	add := func(raw string) {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		if _, dup := seen[parsed]; dup {
			return
		}
		seen[parsed] = struct{}{}
		numbers = append(numbers, parsed)
	}
	for _, word := range contextWords {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		quoted := regexp.QuoteMeta(word)
		before := regexp.MustCompile(`(?i)(-?\d+(?:\.\d+)?)\s+` + quoted + `\b`)
		after := regexp.MustCompile(`(?i)\b` + quoted + `\s*:\s*(-?\d+(?:\.\d+)?)`)
		for _, m := range before.FindAllStringSubmatch(collapsed, -1) {
			add(m[1])
		}
		for _, m := range after.FindAllStringSubmatch(collapsed, -1) {
			add(m[1])
		}
	}
	return numbers
}

// ExtractRelevantNumbers extracts the numbers from text that plausibly
// answer the question. Date components are always dropped; day-count and
// counting questions additionally restrict the candidate range.
func ExtractRelevantNumbers(question, text string) []float64 {
	filtered := make([]float64, 0)
	for _, n := range ExtractNumbers(text) {
		if IsPartOfDate(n, text) {
			continue
		}
		filtered = append(filtered, n)
	}

	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "day"):
		labelled := ExtractNumbersWithContext(text, []string{"days", "day"})
		if len(labelled) > 0 {
			return labelled
		}
		return keep(filtered, func(n float64) bool {
			return n >= 0 && n < DayRangeMax && !isYearLike(n)
		})
	case strings.Contains(q, "how many") || strings.Contains(q, "count"):
		return keep(filtered, func(n float64) bool {
			return n >= 0 && n <= CountMax && n == math.Trunc(n) && !isYearLike(n)
		})
	default:
		return filtered
	}
}

// isYearLike reports whether a number is a 4-digit integer in the year range.
func isYearLike(n float64) bool {
	return n == math.Trunc(n) && n >= YearMin && n <= YearMax
}

func keep(numbers []float64, pred func(float64) bool) []float64 {
	kept := make([]float64, 0, len(numbers))
	for _, n := range numbers {
		if pred(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

// dateShapeContains reports whether a numeric component of a date-shaped
// token equals value.
func dateShapeContains(shape, sep string, value int) bool {
	for _, part := range strings.Split(shape, sep) {
		parsed, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if parsed == value {
			return true
		}
	}
	return false
}

// FormatNumbers renders a candidate list for diagnostics.
func FormatNumbers(numbers []float64) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.FormatFloat(n, 'f', -1, 64))
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
