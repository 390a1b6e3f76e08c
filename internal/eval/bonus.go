package eval

import (
	"fmt"
	"strings"

	"taktmate/internal/answer"
	"taktmate/internal/relevance"
)

// evaluateBonus grades bonus criteria with simplified variants of the
// primary evaluators. Callers only invoke it after the primary answer
// passed; the gate lives in Evaluate.
func evaluateBonus(modelAnswer string, bonus ExpectedAnswer) (bool, string) {
	switch bonus.Type {
	case AnswerNumber:
		return bonusNumber(modelAnswer, bonus)
	case AnswerStringList:
		return bonusUnorderedList(modelAnswer, bonus)
	default:
		return bonusString(modelAnswer, bonus)
	}
}

// bonusNumber accepts any number in the answer matching a bonus value.
func bonusNumber(modelAnswer string, bonus ExpectedAnswer) (bool, string) {
	extracted := relevance.ExtractNumbers(modelAnswer)
	for _, value := range bonus.ValidValues {
		want, ok := answer.NormalizeNumber(value)
		if !ok {
			continue
		}
		if numbersMatch(extracted, want) {
			return true, fmt.Sprintf("answer mentions bonus number %s", value)
		}
	}
	return false, ""
}

// bonusString accepts an exact, substring, or fuzzy match of any bonus value.
func bonusString(modelAnswer string, bonus ExpectedAnswer) (bool, string) {
	normalizedAnswer := answer.NormalizeString(modelAnswer)
	for _, value := range bonus.ValidValues {
		normalizedValue := answer.NormalizeString(value)
		if normalizedValue == "" {
			continue
		}
		if normalizedAnswer == normalizedValue ||
			(normalizedAnswer != "" && strings.Contains(normalizedAnswer, normalizedValue)) ||
			answer.Similarity(normalizedAnswer, normalizedValue) >= SimilarityThreshold {
			return true, fmt.Sprintf("answer mentions %q", value)
		}
	}
	return false, ""
}

// bonusUnorderedList requires every bonus item to appear among the
// answer's list items.
func bonusUnorderedList(modelAnswer string, bonus ExpectedAnswer) (bool, string) {
	items := answer.NormalizeList(modelAnswer)
	used := make([]bool, len(items))
	for _, value := range bonus.ValidValues {
		want := answer.NormalizeString(value)
		matched := false
		for i, item := range items {
			if used[i] {
				continue
			}
			if answer.Similarity(item, want) >= SimilarityThreshold {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false, ""
		}
	}
	return true, fmt.Sprintf("answer lists all %d bonus items", len(bonus.ValidValues))
}
