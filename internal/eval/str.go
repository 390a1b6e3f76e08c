package eval

import (
	"fmt"
	"strings"

	"taktmate/internal/answer"
	"taktmate/internal/relevance"
)

// evaluateString grades a scalar string answer. Exact and substring matches
// win outright: descriptive answers often embed the correct short answer in
// longer prose, and edit distance alone would punish that. Numeric expected
// values also accept any extracted number within tolerance. Otherwise the
// best fuzzy similarity across expected values decides.
func evaluateString(modelAnswer string, expected ExpectedAnswer) (float64, bool, string) {
	normalizedAnswer := answer.NormalizeString(modelAnswer)
	var extracted []float64
	extractedOnce := false

	best := 0.0
	for _, value := range expected.ValidValues {
		normalizedValue := answer.NormalizeString(value)
		if normalizedValue == "" {
			continue
		}
		if normalizedValue == normalizedAnswer {
			return 1.0, true, ""
		}
		if normalizedAnswer != "" && (strings.Contains(normalizedAnswer, normalizedValue) || strings.Contains(normalizedValue, normalizedAnswer)) {
			return 1.0, true, ""
		}
		if want, ok := answer.NormalizeNumber(value); ok {
			if !extractedOnce {
				extracted = relevance.ExtractNumbers(modelAnswer)
				extractedOnce = true
			}
			if numbersMatch(extracted, want) {
				return 1.0, true, ""
			}
		}
		if similarity := answer.Similarity(normalizedAnswer, normalizedValue); similarity > best {
			best = similarity
		}
	}

	if best >= SimilarityThreshold {
		return best, true, ""
	}
	diag := fmt.Sprintf("best similarity %.3f below threshold %.2f for expected values %v",
		best, SimilarityThreshold, expected.ValidValues)
	return best, false, diag
}
