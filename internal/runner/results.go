package runner

import (
	"time"

	"taktmate/internal/eval"
)

// Results captures one grading run end-to-end.
type Results struct {
	RunID         string           `json:"run_id"`
	QuestionsFile string           `json:"questions_file"`
	AnswersFile   string           `json:"answers_file"`
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at"`
	Questions     []QuestionResult `json:"questions"`
	Summary       RunSummary       `json:"summary"`
}

// QuestionResult records the grading outcome for a single question.
type QuestionResult struct {
	EvalID    string          `json:"eval_id"`
	ID        string          `json:"id,omitempty"`
	QueryType string          `json:"query_type,omitempty"`
	Eval      eval.EvalResult `json:"eval"`
}

// RunSummary aggregates pass/fail and score metrics for a run.
type RunSummary struct {
	QuestionsTotal  int     `json:"questions_total"`
	QuestionsPassed int     `json:"questions_passed"`
	QuestionsFailed int     `json:"questions_failed"`
	PassRate        float64 `json:"pass_rate"`
	MeanSimilarity  float64 `json:"mean_similarity"`
	BonusesEarned   int     `json:"bonuses_earned"`
	TotalScore      float64 `json:"total_score"`
}

// summarize computes run metrics from per-question results.
func summarize(questions []QuestionResult) RunSummary {
	summary := RunSummary{QuestionsTotal: len(questions)}
	if len(questions) == 0 {
		return summary
	}
	similaritySum := 0.0
	for _, q := range questions {
		if q.Eval.Passed {
			summary.QuestionsPassed++
		} else {
			summary.QuestionsFailed++
		}
		if q.Eval.BonusScore > 0 {
			summary.BonusesEarned++
		}
		similaritySum += q.Eval.SimilarityScore
		summary.TotalScore += q.Eval.TotalScore
	}
	summary.PassRate = float64(summary.QuestionsPassed) / float64(summary.QuestionsTotal)
	summary.MeanSimilarity = similaritySum / float64(summary.QuestionsTotal)
	return summary
}
