package question

import "taktmate/internal/eval"

// ToEval converts an expectation to the evaluation engine's descriptor.
func (e Expectation) ToEval() eval.ExpectedAnswer {
	expected := eval.ExpectedAnswer{
		Type:          eval.AnswerType(e.Type),
		ValidValues:   e.ValidValues.Strings,
		ValidObjects:  e.ValidValues.Objects,
		InvalidValues: e.InvalidValues,
	}
	if e.Bonus != nil {
		bonus := e.Bonus.ToEval()
		expected.Bonus = &bonus
	}
	return expected
}
