package cucumber

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cucumber/godog"

	"taktmate/internal/eval"
)

// featureState carries one scenario's question, expectation, and result.
type featureState struct {
	question  string
	queryType eval.QueryType
	expected  eval.ExpectedAnswer
	result    eval.EvalResult
	graded    bool
}

// InitializeScenario registers the grading step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = featureState{}
		return c, nil
	})

	ctx.Step(`^a number question "([^"]*)" expecting "([^"]*)"$`, state.numberQuestion)
	ctx.Step(`^a number question "([^"]*)" expecting "([^"]*)" with bonus text "([^"]*)"$`, state.numberQuestionWithBonus)
	ctx.Step(`^a string question "([^"]*)" expecting "([^"]*)"$`, state.stringQuestion)
	ctx.Step(`^a list question "([^"]*)" expecting "([^"]*)" and forbidding "([^"]*)"$`, state.listQuestion)
	ctx.Step(`^an ordered list question "([^"]*)" expecting "([^"]*)"$`, state.orderedListQuestion)
	ctx.Step(`^the model answers "([^"]*)"$`, state.modelAnswers)
	ctx.Step(`^the grade passes with similarity (\d+(?:\.\d+)?)$`, state.gradePassesWithSimilarity)
	ctx.Step(`^the grade passes with total score (\d+(?:\.\d+)?)$`, state.gradePassesWithTotal)
	ctx.Step(`^the grade fails$`, state.gradeFails)
	ctx.Step(`^no bonus is awarded$`, state.noBonusAwarded)
}

func (s *featureState) numberQuestion(question, value string) error {
	s.question = question
	s.expected = eval.ExpectedAnswer{Type: eval.AnswerNumber, ValidValues: []string{value}}
	return nil
}

func (s *featureState) numberQuestionWithBonus(question, value, bonusText string) error {
	if err := s.numberQuestion(question, value); err != nil {
		return err
	}
	s.expected.Bonus = &eval.ExpectedAnswer{
		Type:        eval.AnswerString,
		ValidValues: []string{bonusText},
	}
	return nil
}

func (s *featureState) stringQuestion(question, value string) error {
	s.question = question
	s.expected = eval.ExpectedAnswer{Type: eval.AnswerString, ValidValues: []string{value}}
	return nil
}

func (s *featureState) listQuestion(question, values, forbidden string) error {
	s.question = question
	s.expected = eval.ExpectedAnswer{
		Type:          eval.AnswerStringList,
		ValidValues:   splitValues(values),
		InvalidValues: splitValues(forbidden),
	}
	return nil
}

func (s *featureState) orderedListQuestion(question, values string) error {
	s.question = question
	s.queryType = eval.QueryLatestN
	s.expected = eval.ExpectedAnswer{
		Type:        eval.AnswerStringList,
		ValidValues: splitValues(values),
	}
	return nil
}

func (s *featureState) modelAnswers(modelAnswer string) error {
	if s.question == "" {
		return fmt.Errorf("no question configured")
	}
	s.result = eval.Evaluate(s.question, modelAnswer, s.expected, s.queryType)
	s.graded = true
	return nil
}

func (s *featureState) gradePassesWithSimilarity(want float64) error {
	if err := s.requireGraded(); err != nil {
		return err
	}
	if !s.result.Passed {
		return fmt.Errorf("grade failed: %s", s.result.ErrorMessage)
	}
	if math.Abs(s.result.SimilarityScore-want) > 1e-9 {
		return fmt.Errorf("similarity = %v, want %v", s.result.SimilarityScore, want)
	}
	return nil
}

func (s *featureState) gradePassesWithTotal(want float64) error {
	if err := s.requireGraded(); err != nil {
		return err
	}
	if !s.result.Passed {
		return fmt.Errorf("grade failed: %s", s.result.ErrorMessage)
	}
	if math.Abs(s.result.TotalScore-want) > 1e-9 {
		return fmt.Errorf("total score = %v, want %v", s.result.TotalScore, want)
	}
	return nil
}

func (s *featureState) gradeFails() error {
	if err := s.requireGraded(); err != nil {
		return err
	}
	if s.result.Passed {
		return fmt.Errorf("grade unexpectedly passed with score %v", s.result.SimilarityScore)
	}
	return nil
}

func (s *featureState) noBonusAwarded() error {
	if err := s.requireGraded(); err != nil {
		return err
	}
	if s.result.BonusScore != 0 || s.result.BonusReason != "" {
		return fmt.Errorf("bonus awarded: %+v", s.result)
	}
	return nil
}

func (s *featureState) requireGraded() error {
	if !s.graded {
		return fmt.Errorf("no answer graded yet")
	}
	return nil
}

func splitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, strings.TrimSpace(part))
	}
	return values
}
