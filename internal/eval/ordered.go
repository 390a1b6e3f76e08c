package eval

import (
	"fmt"

	"taktmate/internal/answer"
)

// evaluateOrderedList grades a position-sensitive list answer. Each
// expected position must fuzzily match the model item at the same position;
// partial credit is reported but only a perfect sequence passes.
func evaluateOrderedList(modelAnswer string, expected ExpectedAnswer) (float64, bool, string) {
	items := answer.ExtractOrderedList(modelAnswer)
	wanted := normalizeValues(expected.ValidValues)
	if len(wanted) == 0 {
		return 0, false, "no expected values configured"
	}

	correct := 0
	for i, want := range wanted {
		if i >= len(items) {
			break
		}
		if answer.Similarity(items[i], want) >= SimilarityThreshold {
			correct++
		}
	}
	score := float64(correct) / float64(len(wanted))
	if score == 1.0 {
		return 1.0, true, ""
	}

	diag := fmt.Sprintf("%d of %d positions matched", correct, len(wanted))
	if len(items) != len(wanted) {
		diag += fmt.Sprintf("; answer has %d items, expected %d", len(items), len(wanted))
	}
	return score, false, diag
}

// normalizeValues normalizes expected values for fuzzy comparison.
func normalizeValues(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, answer.NormalizeString(value))
	}
	return normalized
}
