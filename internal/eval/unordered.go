package eval

import (
	"fmt"

	"taktmate/internal/answer"
)

// evaluateUnorderedList grades an order-insensitive list answer with
// two-phase greedy matching. Phase one pairs each expected item, in the
// order given, with the highest-similarity unused model item; ties between
// near-threshold candidates resolve by first-found order, not by a globally
// optimal assignment — kept deliberately for result compatibility. Phase
// two charges remaining model items that match invalid values as a penalty
// against the same denominator, so one hallucinated item cancels one
// correct item's credit.
func evaluateUnorderedList(modelAnswer string, expected ExpectedAnswer) (float64, bool, string) {
	items := answer.NormalizeList(modelAnswer)
	wanted := normalizeValues(expected.ValidValues)
	if len(wanted) == 0 {
		return 0, false, "no expected values configured"
	}

	used := make([]bool, len(items))
	found := 0
	for _, want := range wanted {
		bestIndex := -1
		bestScore := 0.0
		for i, item := range items {
			if used[i] {
				continue
			}
			if score := answer.Similarity(item, want); score > bestScore {
				bestScore = score
				bestIndex = i
			}
		}
		if bestIndex >= 0 && bestScore >= SimilarityThreshold {
			used[bestIndex] = true
			found++
		}
	}

	invalidValues := normalizeValues(expected.InvalidValues)
	invalidUsed := make([]bool, len(invalidValues))
	invalid := 0
	var flagged []string
	for i, item := range items {
		if used[i] {
			continue
		}
		for j, bad := range invalidValues {
			if invalidUsed[j] {
				continue
			}
			if answer.Similarity(item, bad) >= SimilarityThreshold {
				invalidUsed[j] = true
				used[i] = true
				invalid++
				flagged = append(flagged, item)
				break
			}
		}
	}

	total := float64(len(wanted))
	score := float64(found)/total - float64(invalid)/total
	if score < 0 {
		score = 0
	}
	if score >= 1.0 {
		return score, true, ""
	}

	diag := fmt.Sprintf("found %d of %d expected items", found, len(wanted))
	if invalid > 0 {
		diag += fmt.Sprintf("; %d invalid items present: %v", invalid, flagged)
	}
	return score, false, diag
}
