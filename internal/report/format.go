package report

import (
	"fmt"
	"strings"
)

const scoreBarCells = 10

// formatPassRate returns a percentage string for report output.
func formatPassRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate*100)
}

// formatScore renders a score with two decimals.
func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// scoreBar renders a proportional bar for a score in [0,1].
func scoreBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*scoreBarCells + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarCells-filled)
}
