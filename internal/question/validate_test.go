package question

import (
	"strings"
	"testing"
)

func validSpec() Spec {
	return Spec{
		Version: 1,
		Questions: []Question{{
			ID:     "q1",
			Prompt: "How many events were held?",
			Expected: Expectation{
				Type:        "number",
				ValidValues: ValueList{Strings: []string{"42"}},
			},
		}},
	}
}

// TestNormalizeSpecValid verifies a well-formed spec passes validation.
func TestNormalizeSpecValid(t *testing.T) {
	if _, err := NormalizeSpec(validSpec()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNormalizeSpecUnknownAnswerType verifies typoed answer types are
// caught as configuration errors.
func TestNormalizeSpecUnknownAnswerType(t *testing.T) {
	spec := validSpec()
	spec.Questions[0].Expected.Type = "nubmer"
	_, err := NormalizeSpec(spec)
	if err == nil || !strings.Contains(err.Error(), "unknown answer type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNormalizeSpecDuplicateIDs verifies duplicate question IDs are rejected.
func TestNormalizeSpecDuplicateIDs(t *testing.T) {
	spec := validSpec()
	spec.Questions = append(spec.Questions, spec.Questions[0])
	_, err := NormalizeSpec(spec)
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNormalizeSpecInvalidValuesScope verifies invalid_values is only
// accepted for list_of_strings.
func TestNormalizeSpecInvalidValuesScope(t *testing.T) {
	spec := validSpec()
	spec.Questions[0].Expected.InvalidValues = []string{"Dave"}
	_, err := NormalizeSpec(spec)
	if err == nil || !strings.Contains(err.Error(), "invalid_values") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNormalizeSpecNestedBonus verifies bonus descriptors cannot nest.
func TestNormalizeSpecNestedBonus(t *testing.T) {
	spec := validSpec()
	spec.Questions[0].Expected.Bonus = &Expectation{
		Type:        "string",
		ValidValues: ValueList{Strings: []string{"up"}},
		Bonus: &Expectation{
			Type:        "string",
			ValidValues: ValueList{Strings: []string{"down"}},
		},
	}
	_, err := NormalizeSpec(spec)
	if err == nil || !strings.Contains(err.Error(), "do not nest") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestNormalizeSpecUnknownQueryType verifies unrecognized query tags are
// rejected while known ones pass.
func TestNormalizeSpecUnknownQueryType(t *testing.T) {
	spec := validSpec()
	spec.Questions[0].QueryType = "latest_n"
	if _, err := NormalizeSpec(spec); err != nil {
		t.Fatalf("latest_n should validate: %v", err)
	}
	spec = validSpec()
	spec.Questions[0].QueryType = "mystery"
	_, err := NormalizeSpec(spec)
	if err == nil || !strings.Contains(err.Error(), "unknown query type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExpectationToEval verifies descriptor conversion including bonus.
func TestExpectationToEval(t *testing.T) {
	expectation := Expectation{
		Type:          "list_of_strings",
		ValidValues:   ValueList{Strings: []string{"Alice"}},
		InvalidValues: []string{"Dave"},
		Bonus: &Expectation{
			Type:        "number",
			ValidValues: ValueList{Strings: []string{"7"}},
		},
	}
	converted := expectation.ToEval()
	if converted.Type != "list_of_strings" || len(converted.ValidValues) != 1 {
		t.Fatalf("conversion wrong: %+v", converted)
	}
	if converted.Bonus == nil || converted.Bonus.ValidValues[0] != "7" {
		t.Fatalf("bonus conversion wrong: %+v", converted.Bonus)
	}
}
