package answer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	usDateRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	longDateRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`)
	monthByName = map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
	}
)

// ExtractDate finds the first recognizable date in text. Supported shapes
// are ISO (2024-03-01), US (3/1/2024), and long form (1 March 2024).
// ok is false when no date pattern matches or the match is not a real
// calendar date.
func ExtractDate(text string) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := usDateRe.FindStringSubmatch(text); m != nil {
		return buildDate(m[3], m[1], m[2])
	}
	if m := longDateRe.FindStringSubmatch(text); m != nil {
		month := monthByName[strings.ToLower(m[2])]
		return buildDateParts(atoiSafe(m[3]), int(month), atoiSafe(m[1]))
	}
	return time.Time{}, false
}

func buildDate(year, month, day string) (time.Time, bool) {
	return buildDateParts(atoiSafe(year), atoiSafe(month), atoiSafe(day))
}

func buildDateParts(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); reject those.
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func atoiSafe(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
