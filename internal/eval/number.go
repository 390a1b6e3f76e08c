package eval

import (
	"fmt"
	"math"

	"taktmate/internal/answer"
	"taktmate/internal/relevance"
)

// evaluateNumber grades a numeric answer. The model answer is reduced to
// question-relevant numeric candidates; any candidate within tolerance of
// any expected value is a full pass.
func evaluateNumber(question, modelAnswer string, expected ExpectedAnswer) (float64, bool, string) {
	candidates := relevance.ExtractRelevantNumbers(question, modelAnswer)
	wanted := expectedNumbers(expected.ValidValues)
	for _, candidate := range candidates {
		for _, want := range wanted {
			if math.Abs(candidate-want) <= NumericTolerance {
				return 1.0, true, ""
			}
		}
	}
	diag := fmt.Sprintf("found relevant numbers: %s, expected one of: %s",
		relevance.FormatNumbers(candidates), relevance.FormatNumbers(wanted))
	return 0, false, diag
}

// expectedNumbers normalizes expected values to floats, skipping entries
// that contain no number.
func expectedNumbers(values []string) []float64 {
	numbers := make([]float64, 0, len(values))
	for _, value := range values {
		if n, ok := answer.NormalizeNumber(value); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// numbersMatch reports whether any extracted number equals want within
// tolerance.
func numbersMatch(numbers []float64, want float64) bool {
	for _, n := range numbers {
		if math.Abs(n-want) <= NumericTolerance {
			return true
		}
	}
	return false
}
