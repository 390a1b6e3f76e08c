package answer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyRe  = regexp.MustCompile(`[$€£¥]`)
	thousandsRe = regexp.MustCompile(`(\d),(\d)`)
	numberRe    = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	punctuation = strings.NewReplacer(
		".", "", ",", "", ";", "", ":", "",
		"!", "", "?", "", `"`, "", "'", "",
	)
)

// NormalizeNumber extracts the first signed decimal number from a value,
// ignoring currency symbols and thousands separators. ok is false when the
// value contains no number.
func NormalizeNumber(v string) (float64, bool) {
	cleaned := currencyRe.ReplaceAllString(v, "")
	cleaned = CollapseThousands(cleaned)
	match := numberRe.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// NormalizeString lowercases a value, strips a fixed punctuation set, and
// collapses internal whitespace. The result is stable under repeated
// application.
func NormalizeString(v string) string {
	lowered := strings.ToLower(v)
	stripped := punctuation.Replace(lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

// CollapseThousands removes commas acting as thousands separators
// (digit,digit groups) without touching other commas.
func CollapseThousands(text string) string {
	for {
		collapsed := thousandsRe.ReplaceAllString(text, "$1$2")
		if collapsed == text {
			return collapsed
		}
		text = collapsed
	}
}
