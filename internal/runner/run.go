package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"taktmate/internal/eval"
	"taktmate/internal/question"
)

// RunParams configures one grading run.
type RunParams struct {
	QuestionsFile string
	AnswersFile   string
	OutputDir     string
	Workers       int
}

// Run grades every question in the spec against the model answers file and
// returns aggregated results. The evaluation engine itself is pure; the
// only concurrency lives here, bounded by Workers, and result order always
// follows the spec's question order.
func Run(ctx context.Context, params RunParams) (Results, error) {
	spec, err := question.LoadSpec(params.QuestionsFile)
	if err != nil {
		return Results{}, err
	}
	answers, err := LoadAnswers(params.AnswersFile)
	if err != nil {
		return Results{}, err
	}
	runID, err := NewRunID()
	if err != nil {
		return Results{}, fmt.Errorf("generate run id: %w", err)
	}

	results := Results{
		RunID:         runID,
		QuestionsFile: params.QuestionsFile,
		AnswersFile:   params.AnswersFile,
		StartedAt:     time.Now().UTC(),
		Questions:     make([]QuestionResult, len(spec.Questions)),
	}

	grade := func(index int) {
		results.Questions[index] = gradeQuestion(spec.Questions[index], answers)
	}
	if params.Workers <= 1 {
		for i := range spec.Questions {
			if err := ctx.Err(); err != nil {
				return Results{}, err
			}
			grade(i)
		}
	} else {
		runConcurrent(ctx, len(spec.Questions), params.Workers, grade)
		if err := ctx.Err(); err != nil {
			return Results{}, err
		}
	}

	results.FinishedAt = time.Now().UTC()
	results.Summary = summarize(results.Questions)
	return results, nil
}

// gradeQuestion evaluates a single question, producing a failed result with
// a diagnostic when no model answer was supplied.
func gradeQuestion(q question.Question, answers map[string]string) QuestionResult {
	result := QuestionResult{
		EvalID:    uuid.NewString(),
		ID:        q.ID,
		QueryType: q.QueryType,
	}
	modelAnswer, ok := answers[q.ID]
	if !ok {
		result.Eval = eval.EvalResult{
			Question:     q.Prompt,
			Expected:     q.Expected.ToEval(),
			Passed:       false,
			ErrorMessage: fmt.Sprintf("no model answer provided for question %q", q.ID),
			Timestamp:    time.Now().UTC(),
		}
		return result
	}
	result.Eval = eval.Evaluate(q.Prompt, modelAnswer, q.Expected.ToEval(), eval.QueryType(q.QueryType))
	return result
}

// runConcurrent fans question indices out to a bounded worker pool. Each
// worker writes to its own slice slot, so no synchronization beyond the
// WaitGroup is needed.
func runConcurrent(ctx context.Context, count, workers int, grade func(int)) {
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indices {
				grade(index)
			}
		}()
	}
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			close(indices)
			wg.Wait()
			return
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()
}
