package eval

import (
	"fmt"
	"time"
)

// Evaluate grades one model answer against its expected answer. Dispatch
// follows the declared answer type; list_of_strings answers for ordered
// query types are compared position-by-position, all other lists as sets.
// Bonus criteria run only after the primary answer passes. No panic
// escapes: any failure inside an evaluator becomes a failed result with an
// error message.
func Evaluate(question, modelAnswer string, expected ExpectedAnswer, queryType QueryType) (result EvalResult) {
	result = EvalResult{
		Question:    question,
		ModelAnswer: modelAnswer,
		Expected:    expected,
		Timestamp:   time.Now().UTC(),
	}
	defer func() {
		if r := recover(); r != nil {
			result.Passed = false
			result.SimilarityScore = 0
			result.BonusScore = 0
			result.TotalScore = 0
			result.BonusReason = ""
			result.ErrorMessage = fmt.Sprintf("evaluation error: %v", r)
		}
	}()

	var (
		score  float64
		passed bool
		diag   string
	)
	switch expected.Type {
	case AnswerNumber:
		score, passed, diag = evaluateNumber(question, modelAnswer, expected)
	case AnswerString:
		score, passed, diag = evaluateString(modelAnswer, expected)
	case AnswerStringList:
		if IsOrderedQuery(queryType) {
			score, passed, diag = evaluateOrderedList(modelAnswer, expected)
		} else {
			score, passed, diag = evaluateUnorderedList(modelAnswer, expected)
		}
	case AnswerObjectList:
		score, passed, diag = evaluateObjectList(modelAnswer, expected)
	default:
		// Unrecognized types are a configuration error caught at spec
		// validation; grading still degrades to string comparison so a
		// malformed descriptor cannot sink a batch.
		score, passed, diag = evaluateString(modelAnswer, expected)
	}

	result.Passed = passed
	result.SimilarityScore = clampScore(score)
	result.TotalScore = result.SimilarityScore
	if !passed {
		result.ErrorMessage = diag
	}

	if passed && expected.Bonus != nil {
		if earned, reason := evaluateBonus(modelAnswer, *expected.Bonus); earned {
			result.BonusScore = BonusUnit
			result.BonusReason = reason
			result.TotalScore = result.SimilarityScore + BonusUnit
		}
	}
	return result
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
