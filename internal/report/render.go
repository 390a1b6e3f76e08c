package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taktmate/internal/runner"
)

// Render produces the console report for a grading run: a header, one line
// per question with a score bar, and a summary footer.
func Render(results runner.Results, noColor bool) string {
	var builder strings.Builder
	builder.WriteString(renderHeader(results, noColor))
	builder.WriteString("\n")
	for _, q := range results.Questions {
		builder.WriteString(renderQuestionLine(q, noColor))
		builder.WriteString("\n")
	}
	builder.WriteString(renderSummary(results.Summary, noColor))
	builder.WriteString("\n")
	return builder.String()
}

// renderHeader renders the run header line.
func renderHeader(results runner.Results, noColor bool) string {
	line := "Run " + results.RunID
	if results.QuestionsFile != "" {
		line += " | Questions: " + results.QuestionsFile
	}
	if !results.FinishedAt.IsZero() && !results.StartedAt.IsZero() {
		line += " | Took: " + results.FinishedAt.Sub(results.StartedAt).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderQuestionLine renders one graded question with its score bar.
func renderQuestionLine(q runner.QuestionResult, noColor bool) string {
	glyph := "✓"
	color := lipgloss.Color("35")
	if !q.Eval.Passed {
		glyph = "✗"
		color = lipgloss.Color("160")
	}
	label := q.ID
	if label == "" {
		label = q.Eval.Question
	}
	line := fmt.Sprintf("%s %s %s %s", glyph, scoreBar(q.Eval.SimilarityScore),
		formatScore(q.Eval.TotalScore), label)
	if q.Eval.BonusScore > 0 {
		line += fmt.Sprintf(" (+%s bonus: %s)", formatScore(q.Eval.BonusScore), q.Eval.BonusReason)
	}
	if !q.Eval.Passed && q.Eval.ErrorMessage != "" {
		line += "\n    " + q.Eval.ErrorMessage
	}
	return stylize(line, noColor, color)
}

// renderSummary renders the aggregate footer line.
func renderSummary(summary runner.RunSummary, noColor bool) string {
	line := fmt.Sprintf("Passed %d/%d (%s%%) | Mean similarity: %s | Bonuses: %d | Total score: %s",
		summary.QuestionsPassed, summary.QuestionsTotal,
		formatPassRate(summary.PassRate),
		formatScore(summary.MeanSimilarity),
		summary.BonusesEarned,
		formatScore(summary.TotalScore))
	return stylize(line, noColor, lipgloss.Color("242"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
