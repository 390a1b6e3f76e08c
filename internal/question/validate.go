package question

import (
	"fmt"
	"strings"

	"taktmate/internal/eval"
)

// Issue captures a validation problem in a grading specification.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question spec validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// unorderedQueryTypes are recognized tags that do not force positional
// comparison; ordered tags live in the eval package.
var unorderedQueryTypes = map[string]struct{}{
	"lookup":      {},
	"count":       {},
	"aggregation": {},
	"filter":      {},
}

// NormalizeSpec trims whitespace and validates a grading spec. Unrecognized
// answer types are configuration errors surfaced here rather than at
// grading time.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID != "" {
			if _, exists := seenIDs[question.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
			} else {
				seenIDs[question.ID] = struct{}{}
			}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.QueryType = strings.TrimSpace(question.QueryType)
		if question.QueryType != "" && !knownQueryType(question.QueryType) {
			collector.add(prefix+".query_type", fmt.Sprintf("unknown query type %q", question.QueryType))
		}

		validateExpectation(collector, prefix+".expected", question.Expected, true)
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// validateExpectation checks one expected-answer descriptor. allowBonus is
// false for nested bonus descriptors: bonuses do not nest.
func validateExpectation(collector *issueCollector, prefix string, expectation Expectation, allowBonus bool) {
	answerType := eval.AnswerType(strings.TrimSpace(expectation.Type))
	if answerType == "" {
		collector.add(prefix+".answer_type", "is required")
	} else if !eval.KnownAnswerType(answerType) {
		collector.add(prefix+".answer_type", fmt.Sprintf("unknown answer type %q", answerType))
	}

	if expectation.ValidValues.IsEmpty() {
		collector.add(prefix+".valid_values", "must include at least one entry")
	}
	if len(expectation.ValidValues.Objects) > 0 && answerType != eval.AnswerObjectList {
		collector.add(prefix+".valid_values", "records are only valid for list_of_objects")
	}
	if len(expectation.InvalidValues) > 0 && answerType != eval.AnswerStringList {
		collector.add(prefix+".invalid_values", "only supported for list_of_strings")
	}

	if expectation.Bonus != nil {
		if !allowBonus {
			collector.add(prefix+".bonus", "bonus descriptors do not nest")
			return
		}
		validateExpectation(collector, prefix+".bonus", *expectation.Bonus, false)
	}
}

// knownQueryType reports whether a query type tag is recognized, ordered or
// not.
func knownQueryType(tag string) bool {
	if eval.IsOrderedQuery(eval.QueryType(tag)) {
		return true
	}
	_, ok := unorderedQueryTypes[tag]
	return ok
}
