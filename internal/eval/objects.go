package eval

import (
	"fmt"
	"sort"

	"taktmate/internal/answer"
)

// nameKeys are the record fields treated as a row's label, in preference
// order.
var nameKeys = []string{"name", "title", "player_name", "event_name"}

// evaluateObjectList grades a list-of-records answer. When the model answer
// contains CSV-shaped rows the row count is scored directly; otherwise the
// expected records are flattened to their name-like field and graded as an
// unordered string list.
func evaluateObjectList(modelAnswer string, expected ExpectedAnswer) (float64, bool, string) {
	expectedCount := len(expected.ValidObjects)
	if expectedCount == 0 {
		expectedCount = len(expected.ValidValues)
	}
	if expectedCount == 0 {
		return 0, false, "no expected values configured"
	}

	rows := answer.ExtractCSVRows(modelAnswer)
	if len(rows) == 0 {
		flat := ExpectedAnswer{
			Type:        AnswerStringList,
			ValidValues: objectNames(expected),
		}
		score, passed, diag := evaluateUnorderedList(modelAnswer, flat)
		if diag != "" {
			diag = "no csv rows found; graded by record names: " + diag
		}
		return score, passed, diag
	}

	score := float64(len(rows)) / float64(expectedCount)
	if score > 1.0 {
		score = 1.0
	}
	if score == 1.0 {
		return 1.0, true, ""
	}
	return score, false, fmt.Sprintf("found %d rows, expected %d", len(rows), expectedCount)
}

// objectNames extracts each expected record's name-like field, falling back
// to flat valid values when no records are configured.
func objectNames(expected ExpectedAnswer) []string {
	if len(expected.ValidObjects) == 0 {
		return expected.ValidValues
	}
	names := make([]string, 0, len(expected.ValidObjects))
	for _, object := range expected.ValidObjects {
		name := ""
		for _, key := range nameKeys {
			if value, ok := object[key]; ok && value != "" {
				name = value
				break
			}
		}
		if name == "" {
			// Deterministic fallback: first non-empty field by key order.
			keys := make([]string, 0, len(object))
			for key := range object {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				if object[key] != "" {
					name = object[key]
					break
				}
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
