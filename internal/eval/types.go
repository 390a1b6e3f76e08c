// Package eval grades free-text model answers against structured expected
// answers. Evaluation is a pure function of its inputs: no I/O, no shared
// state, and no panic ever escapes Evaluate.
package eval

import "time"

// Fixed grading configuration.
const (
	// SimilarityThreshold is the fuzzy-match cutoff shared by every
	// evaluator, primary and bonus alike.
	SimilarityThreshold = 0.85
	// BonusUnit is the score added when gated bonus criteria are met.
	BonusUnit = 0.5
	// NumericTolerance is the absolute tolerance for numeric equality.
	NumericTolerance = 1e-6
)

// AnswerType selects the grading strategy for an expected answer.
type AnswerType string

const (
	AnswerNumber     AnswerType = "number"
	AnswerString     AnswerType = "string"
	AnswerStringList AnswerType = "list_of_strings"
	AnswerObjectList AnswerType = "list_of_objects"
)

// KnownAnswerType reports whether t is a recognized answer type.
func KnownAnswerType(t AnswerType) bool {
	switch t {
	case AnswerNumber, AnswerString, AnswerStringList, AnswerObjectList:
		return true
	default:
		return false
	}
}

// ExpectedAnswer describes what a correct model answer must contain.
// ValidValues holds scalar expectations (numbers are given as their string
// form); ValidObjects holds row expectations for list_of_objects.
// InvalidValues lists items that must not appear (list_of_strings only).
// Bonus, when set, is graded only after the primary answer passes.
type ExpectedAnswer struct {
	Type          AnswerType          `json:"answer_type"`
	ValidValues   []string            `json:"valid_values,omitempty"`
	ValidObjects  []map[string]string `json:"valid_objects,omitempty"`
	InvalidValues []string            `json:"invalid_values,omitempty"`
	Bonus         *ExpectedAnswer     `json:"bonus,omitempty"`
}

// EvalResult is the outcome of grading one question. SimilarityScore stays
// in [0,1]; BonusScore is 0 or BonusUnit and is only ever non-zero on a
// passing result; TotalScore is their sum.
type EvalResult struct {
	Question        string         `json:"question"`
	ModelAnswer     string         `json:"model_answer"`
	Expected        ExpectedAnswer `json:"expected"`
	Passed          bool           `json:"passed"`
	SimilarityScore float64        `json:"similarity_score"`
	BonusScore      float64        `json:"bonus_score"`
	TotalScore      float64        `json:"total_score"`
	BonusReason     string         `json:"bonus_reason,omitempty"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
