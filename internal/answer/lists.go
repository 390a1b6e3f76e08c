package answer

import (
	"regexp"
	"sort"
	"strings"
)

var (
	listDelimRe    = regexp.MustCompile(`[,\n;|]`)
	itemMarkerRe   = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)
	inlineNumberRe = regexp.MustCompile(`\d+[.)]\s+`)
	numericFieldRe = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
)

// headerTokens are column labels that never name a real list entry.
var headerTokens = map[string]struct{}{
	"name":        {},
	"title":       {},
	"player_name": {},
	"event_name":  {},
}

// NormalizeList splits free text into normalized, deduplicated items sorted
// alphabetically. Commas, newlines, semicolons, and pipes all delimit items;
// leading bullet and ordinal markers are stripped.
func NormalizeList(text string) []string {
	items := splitItems(text)
	seen := map[string]struct{}{}
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if _, exists := seen[item]; exists {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	sort.Strings(unique)
	return unique
}

// ExtractOrderedList splits free text into normalized items preserving
// first-seen order. Tabular text (several lines with three or more commas
// each) is treated as CSV-like output and reduced to its second column,
// which is assumed to hold the label or name.
func ExtractOrderedList(text string) []string {
	if items := extractTabularLabels(text); items != nil {
		return items
	}
	items := splitItems(text)
	seen := map[string]struct{}{}
	ordered := make([]string, 0, len(items))
	for _, item := range items {
		if _, exists := seen[item]; exists {
			continue
		}
		seen[item] = struct{}{}
		ordered = append(ordered, item)
	}
	return ordered
}

// splitItems breaks text on list delimiters and inline ordinal markers,
// normalizing each fragment and dropping empties.
func splitItems(text string) []string {
	// "1. Alice 2. Bob" style answers carry no delimiter, so inline
	// ordinals become line breaks first.
	if len(inlineNumberRe.FindAllString(text, 3)) >= 2 {
		text = inlineNumberRe.ReplaceAllString(text, "\n")
	}
	parts := listDelimRe.Split(text, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = itemMarkerRe.ReplaceAllString(part, "")
		normalized := NormalizeString(part)
		if normalized == "" {
			continue
		}
		items = append(items, normalized)
	}
	return items
}

// extractTabularLabels pulls the second comma-delimited field from each
// tabular line. Returns nil when the text does not look tabular.
func extractTabularLabels(text string) []string {
	lines := strings.Split(text, "\n")
	tabular := 0
	for _, line := range lines {
		if strings.Count(line, ",") >= 3 {
			tabular++
		}
	}
	if tabular < 2 {
		return nil
	}
	seen := map[string]struct{}{}
	labels := make([]string, 0, tabular)
	for _, line := range lines {
		if strings.Count(line, ",") < 3 {
			continue
		}
		fields := strings.Split(line, ",")
		label := strings.TrimSpace(fields[1])
		if label == "" || numericFieldRe.MatchString(label) {
			continue
		}
		normalized := NormalizeString(label)
		if normalized == "" {
			continue
		}
		if _, header := headerTokens[strings.ReplaceAll(normalized, " ", "_")]; header {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		labels = append(labels, normalized)
	}
	return labels
}
